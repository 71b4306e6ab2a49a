package ledger

import "math"

// TransferTo moves amount of kind from l to other in two phases: check that
// l holds the amount (else StatusInsufficient), check that other has space
// for it (else StatusOverflow), then remove and add. No mutation occurs on a
// failed check. Transferring a ledger to itself is a checked no-op: both
// phases still run, but no amounts move.
func (l *Ledger[K]) TransferTo(other *Ledger[K], kind K, amount float64) Status {
	if !l.Has(kind, amount) {
		return StatusInsufficient
	}
	if !other.HasSpace(kind, amount) {
		return StatusOverflow
	}
	if l == other {
		return StatusSuccess
	}
	l.Remove(kind, amount)
	other.Add(kind, amount)
	return StatusSuccess
}

// TransferToMax moves as much of kind as is feasible, up to maxAmount,
// bounded by l's holdings and other's available space. It returns the amount
// actually moved, which may be 0, and never fails. A self-transfer moves
// nothing and returns 0.
func (l *Ledger[K]) TransferToMax(other *Ledger[K], kind K, maxAmount float64) float64 {
	if l == other {
		return 0
	}
	actual := math.Min(maxAmount, l.Get(kind))
	actual = math.Min(actual, other.AvailableSpace(kind))
	if actual <= 0 {
		return 0
	}
	l.Remove(kind, actual)
	other.Add(kind, actual)
	return actual
}

// CanAfford reports whether every cost entry is currently held in full.
func (l *Ledger[K]) CanAfford(costs []Cost[K]) bool {
	for _, c := range costs {
		if !l.Has(c.Kind, c.Amount) {
			return false
		}
	}
	return true
}

// DeductCosts removes every cost entry, all-or-nothing: affordability is
// re-validated first, and if any entry is unaffordable the ledger is left
// untouched and StatusInsufficient is returned.
//
// The pre-check validates each entry against the current amounts, not the
// running total. With duplicate kinds in the list, entries past the first
// only succeed on their own if the earlier removals left enough behind, and
// under an allow_negative deficit policy the aggregate may go below zero.
func (l *Ledger[K]) DeductCosts(costs []Cost[K]) Status {
	if !l.CanAfford(costs) {
		return StatusInsufficient
	}
	for _, c := range costs {
		l.Remove(c.Kind, c.Amount)
	}
	return StatusSuccess
}

// AddBulk applies Add for every entry, best-effort: individual failures
// (overflow under a reject policy, undefined kinds) are absorbed and not
// reported. Costs must be atomic; additive rewards need not be.
func (l *Ledger[K]) AddBulk(amounts []Cost[K]) {
	for _, a := range amounts {
		l.Add(a.Kind, a.Amount)
	}
}
