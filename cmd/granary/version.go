// Version command for the granary CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the granary release version.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("granary v" + Version)
	},
}
