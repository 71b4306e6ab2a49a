// Remove command: decrease the amount of one resource kind.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <kind> <amount>",
	Short: "Remove from a resource amount",
	Long: `Remove decreases the amount of a resource kind. The kind's deficit policy
decides what happens when the result would drop below zero. A negative
amount behaves exactly like add.

Example:
  granary remove gold 20`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	kind := args[0]
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

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

	if status := l.Remove(kind, amount); !status.OK() {
		return statusError(kind, status)
	}
	if err := saveState(s, l, fmt.Sprintf("remove %s %g", kind, amount)); err != nil {
		return err
	}

	fmt.Printf("%s: %g\n", kind, l.Get(kind))
	return nil
}
