// Shared helpers for granary CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/petrichor-games/granary/internal/config"
	"github.com/petrichor-games/granary/internal/paths"
	"github.com/petrichor-games/granary/internal/store"
	"github.com/petrichor-games/granary/pkg/ledger"
)

// systemError marks a failure of the environment (filesystem, database)
// rather than of the user's input. main exits with exitSysError for these
// and exitUserError for everything else.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// sysErr wraps err as a system error. A nil err stays nil.
func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// loadEconomy resolves the config directory and loads + validates the
// economy file.
func loadEconomy() (config.Economy, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return config.Economy{}, sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	eco, err := config.Load(configDir)
	if err != nil {
		return config.Economy{}, sysErr(fmt.Errorf("load economy: %w", err))
	}
	// A malformed economy is the user's file to fix, not a system fault.
	if err := eco.Validate(); err != nil {
		return config.Economy{}, fmt.Errorf("invalid economy: %w", err)
	}
	return eco, nil
}

// openStore resolves the data directory and opens the snapshot store. The
// caller must defer Close.
func openStore() (*store.Store, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir)
	if err != nil {
		return nil, sysErr(fmt.Errorf("resolve data dir: %w", err))
	}
	s, err := store.Open(dataDir)
	if err != nil {
		return nil, sysErr(fmt.Errorf("open store: %w", err))
	}
	return s, nil
}

// currentLedger returns the working ledger: the latest snapshot if one
// exists, otherwise a fresh ledger built from the economy. With fresh=true
// the snapshot history is ignored.
func currentLedger(s *store.Store, eco config.Economy, fresh bool) (*ledger.Ledger[string], error) {
	if !fresh {
		info, err := s.Latest()
		if err == nil {
			l, err := s.Load(info.SnapshotID)
			if err != nil {
				return nil, sysErr(err)
			}
			return l, nil
		}
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			return nil, sysErr(err)
		}
	}
	l := ledger.New[string]()
	eco.Apply(l)
	return l, nil
}

// saveState writes a new snapshot after a mutation.
func saveState(s *store.Store, l *ledger.Ledger[string], label string) error {
	id, err := s.Save(label, l)
	if err != nil {
		return sysErr(fmt.Errorf("save snapshot: %w", err))
	}
	log.Debug().Str("snapshot", id).Str("label", label).Msg("state saved")
	return nil
}

// parseAmount parses a float argument, rejecting NaN-ish garbage with a
// CLI-friendly error.
func parseAmount(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q (expected a number)", arg)
	}
	return v, nil
}

// statusError converts a non-success ledger status into a user-facing error.
func statusError(kind string, status ledger.Status) error {
	switch status {
	case ledger.StatusSuccess:
		return nil
	case ledger.StatusNotDefined:
		return fmt.Errorf("resource %q is not defined in the economy", kind)
	case ledger.StatusOverflow:
		return fmt.Errorf("resource %q would overflow its capacity", kind)
	case ledger.StatusInsufficient:
		return fmt.Errorf("not enough of resource %q", kind)
	default:
		return fmt.Errorf("resource %q: unexpected status %q", kind, status)
	}
}

// kindSummary is the JSON shape for one kind in show output.
type kindSummary struct {
	Kind        string  `json:"kind"`
	DisplayName string  `json:"display_name,omitempty"`
	Amount      float64 `json:"amount"`
	Capacity    float64 `json:"capacity"`
	Production  float64 `json:"production"`
	Consumption float64 `json:"consumption"`
	NetRate     float64 `json:"net_rate"`
	FillRatio   float64 `json:"fill_ratio"`
}

func summarize(l *ledger.Ledger[string], kind string) (kindSummary, bool) {
	s, ok := l.Summary(kind)
	if !ok {
		return kindSummary{}, false
	}
	ks := kindSummary{
		Kind:        kind,
		Amount:      s.Amount,
		Capacity:    s.Capacity,
		Production:  s.Production,
		Consumption: s.Consumption,
		NetRate:     s.NetRate,
		FillRatio:   s.FillRatio,
	}
	if name, ok := l.DisplayName(kind); ok {
		ks.DisplayName = name
	}
	return ks, true
}

// printSummaries renders kinds as JSON or a plain table, sorted by kind so
// output is stable across runs.
func printSummaries(l *ledger.Ledger[string], kinds []string) error {
	sort.Strings(kinds)

	summaries := make([]kindSummary, 0, len(kinds))
	for _, kind := range kinds {
		if ks, ok := summarize(l, kind); ok {
			summaries = append(summaries, ks)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	fmt.Printf("%-12s %10s %10s %8s %8s %8s\n",
		"KIND", "AMOUNT", "CAPACITY", "PROD", "CONS", "NET")
	for _, ks := range summaries {
		capacity := "unlimited"
		if ks.Capacity > 0 {
			capacity = strconv.FormatFloat(ks.Capacity, 'f', -1, 64)
		}
		fmt.Printf("%-12s %10s %10s %8s %8s %8s\n",
			ks.Kind,
			strconv.FormatFloat(ks.Amount, 'f', -1, 64),
			capacity,
			strconv.FormatFloat(ks.Production, 'f', -1, 64),
			strconv.FormatFloat(ks.Consumption, 'f', -1, 64),
			strconv.FormatFloat(ks.NetRate, 'f', -1, 64))
	}
	return nil
}
