// Package sim drives a ledger through simulation ticks. The ledger itself
// never decides when time passes; the Runner is the tick scheduler that
// integrates rates and executes recipes against it.
package sim

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/petrichor-games/granary/pkg/ledger"
)

// ErrNonPositiveTick is returned by NewRunner for a tick length <= 0.
var ErrNonPositiveTick = errors.New("tick length must be positive")

// Recipe is a named exchange: costs are deducted atomically, yields are
// granted best-effort. The asymmetry is deliberate; a recipe must never
// half-charge, but a reward that overflows is simply lost.
type Recipe struct {
	Name   string
	Costs  []ledger.Cost[string]
	Yields []ledger.Cost[string]
}

// Runner owns a ledger and advances it one tick at a time. It is
// synchronous and single-owner, like the ledger it wraps.
type Runner struct {
	ledger *ledger.Ledger[string]
	tick   float64
	ticks  uint64
	log    zerolog.Logger
}

// NewRunner wraps l with a tick length and a logger.
func NewRunner(l *ledger.Ledger[string], tick float64, log zerolog.Logger) (*Runner, error) {
	if tick <= 0 {
		return nil, ErrNonPositiveTick
	}
	return &Runner{ledger: l, tick: tick, log: log}, nil
}

// Ledger returns the wrapped ledger.
func (r *Runner) Ledger() *ledger.Ledger[string] {
	return r.ledger
}

// Ticks returns how many ticks have been applied.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}

// Tick integrates every kind's net rate over one tick length.
func (r *Runner) Tick() {
	r.ledger.ApplyRates(r.tick)
	r.ticks++

	if e := r.log.Debug(); e.Enabled() {
		e = e.Uint64("tick", r.ticks).Float64("dt", r.tick)
		for _, kind := range r.ledger.DefinedKinds() {
			e = e.Float64(kind, r.ledger.Get(kind))
		}
		e.Msg("tick applied")
	}
}

// Run applies n ticks.
func (r *Runner) Run(n int) {
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

// Execute charges the recipe's costs atomically and, on success, grants its
// yields best-effort. The returned status is StatusInsufficient when any
// cost is unaffordable, in which case nothing changes.
func (r *Runner) Execute(recipe Recipe) ledger.Status {
	status := r.ledger.DeductCosts(recipe.Costs)
	if !status.OK() {
		r.log.Warn().Str("recipe", recipe.Name).Str("status", string(status)).
			Msg("recipe rejected")
		return status
	}
	r.ledger.AddBulk(recipe.Yields)
	r.log.Info().Str("recipe", recipe.Name).Msg("recipe executed")
	return status
}
