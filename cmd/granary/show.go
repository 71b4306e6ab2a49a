// Show command: print summaries for one kind or the whole ledger.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [kind]",
	Short: "Show amounts, capacities, and rates",
	Long: `Show prints a summary of every defined resource kind, or of a single
kind when one is given. The working state is the latest snapshot, falling
back to the configured initial amounts when no snapshot exists.

Example:
  granary show
  granary show gold
  granary show --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	eco, err := loadEconomy()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	l, err := currentLedger(s, eco, false)
	if err != nil {
		return err
	}

	kinds := l.DefinedKinds()
	if len(args) == 1 {
		kind := args[0]
		if !l.IsDefined(kind) {
			return fmt.Errorf("resource %q is not defined in the economy", kind)
		}
		kinds = []string{kind}
	}
	return printSummaries(l, kinds)
}
