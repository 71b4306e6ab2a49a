// Add command: increase the amount of one resource kind.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <kind> <amount>",
	Short: "Add to a resource amount",
	Long: `Add increases the amount of a resource kind. The kind's overflow policy
decides what happens when the result would exceed capacity. A negative
amount behaves exactly like remove.

Example:
  granary add gold 50`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	if status := l.Add(kind, amount); !status.OK() {
		return statusError(kind, status)
	}
	if err := saveState(s, l, fmt.Sprintf("add %s %g", kind, amount)); err != nil {
		return err
	}

	fmt.Printf("%s: %g\n", kind, l.Get(kind))
	return nil
}
