// Set command: assign the amount of one resource kind directly.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <kind> <amount>",
	Short: "Set a resource amount directly",
	Long: `Set assigns the amount of a resource kind. The value still passes the
kind's overflow and deficit policies; it is not an unconditional override.

Example:
  granary set energy 75`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
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

	if status := l.Set(kind, amount); !status.OK() {
		return statusError(kind, status)
	}
	if err := saveState(s, l, fmt.Sprintf("set %s %g", kind, amount)); err != nil {
		return err
	}

	fmt.Printf("%s: %g\n", kind, l.Get(kind))
	return nil
}
