// Package main provides the granary CLI, a command-line front end for the
// resource ledger: defining an economy, mutating amounts, running ticks, and
// managing snapshots.
package main

import (
	"errors"
	"os"
)

func main() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode classifies a command error: system faults (filesystem, database)
// exit 2, everything else the user can fix exits 1.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sysE *systemError
	if errors.As(err, &sysE) {
		return exitSysError
	}
	return exitUserError
}
