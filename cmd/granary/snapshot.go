// Snapshot commands: list and delete stored snapshots.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/petrichor-games/granary/internal/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage ledger snapshots",
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotList,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <snapshot-id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

func init() {
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	infos, err := s.List()
	if err != nil {
		return sysErr(fmt.Errorf("list snapshots: %w", err))
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Println("No snapshots.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  kinds=%d  %s\n",
			info.SnapshotID,
			info.CreatedAt.Local().Format(time.RFC3339),
			info.Kinds,
			info.Label)
	}
	return nil
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(args[0]); err != nil {
		// An unknown ID is the user's mistake; anything else is the store's.
		if errors.Is(err, store.ErrSnapshotNotFound) {
			return fmt.Errorf("delete snapshot: %w", err)
		}
		return sysErr(fmt.Errorf("delete snapshot: %w", err))
	}
	fmt.Printf("Deleted snapshot %s\n", args[0])
	return nil
}
