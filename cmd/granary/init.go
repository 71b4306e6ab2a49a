// Init command: set up the config and data directories and write the
// first snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the economy config and snapshot store",
	Long: `Init creates the configuration directory with a default economy.yaml
(if none exists), creates the data directory, and saves an initial snapshot
built from the configured initial amounts.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	eco, err := loadEconomy()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	l, err := currentLedger(s, eco, true)
	if err != nil {
		return err
	}
	if err := saveState(s, l, "init"); err != nil {
		return err
	}

	fmt.Printf("Initialized granary with %d resource kinds\n", l.DefinedCount())
	return nil
}
