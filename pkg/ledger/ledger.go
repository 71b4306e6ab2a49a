package ledger

import "math"

// Ledger tracks quantities, capacities, and rates for a closed set of
// resource kinds. The key type K is the caller's kind enumeration; any
// comparable type works. The zero Ledger is not usable; call New.
type Ledger[K comparable] struct {
	records map[K]*record
}

// New returns an empty Ledger with no kinds defined.
func New[K comparable]() *Ledger[K] {
	return &Ledger[K]{records: make(map[K]*record)}
}

// Define inserts or fully replaces the record for kind. Replacement resets
// rates to zero unless the caller re-seeds them afterwards. No validation of
// InitialAmount against capacity or policy is performed; unset policies get
// the package defaults.
func (l *Ledger[K]) Define(kind K, def Definition) {
	overflow := def.OverflowPolicy
	if !ValidOverflowPolicy(overflow) {
		overflow = DefaultOverflowPolicy
	}
	deficit := def.DeficitPolicy
	if !ValidDeficitPolicy(deficit) {
		deficit = DefaultDeficitPolicy
	}
	l.records[kind] = &record{
		amount:      def.InitialAmount,
		maxCapacity: def.MaxCapacity,
		overflow:    overflow,
		deficit:     deficit,
		displayName: def.DisplayName,
	}
}

// DefineMany applies Define for each entry in order. Later entries overwrite
// earlier ones for the same kind.
func (l *Ledger[K]) DefineMany(defs []KindDefinition[K]) {
	for _, d := range defs {
		l.Define(d.Kind, d.Definition)
	}
}

// IsDefined reports whether kind has been configured on this ledger.
func (l *Ledger[K]) IsDefined(kind K) bool {
	_, ok := l.records[kind]
	return ok
}

// Get returns the current amount for kind, or 0 for an undefined kind.
func (l *Ledger[K]) Get(kind K) float64 {
	if r, ok := l.records[kind]; ok {
		return r.amount
	}
	return 0
}

// Capacity returns the capacity for kind. 0 means unlimited; 0 is also
// returned for an undefined kind. Use IsDefined to disambiguate.
func (l *Ledger[K]) Capacity(kind K) float64 {
	if r, ok := l.records[kind]; ok {
		return r.maxCapacity
	}
	return 0
}

// FillRatio returns amount/capacity clamped to [0, 1] for capacity-limited
// kinds, and 0 for unlimited or undefined kinds. The ratio is undefined
// without a ceiling.
func (l *Ledger[K]) FillRatio(kind K) float64 {
	r, ok := l.records[kind]
	if !ok || r.maxCapacity <= 0 {
		return 0
	}
	return math.Min(1, r.amount/r.maxCapacity)
}

// AvailableSpace returns the room left before capacity: +Inf for an
// unlimited kind, max(0, capacity-amount) for a limited one, and 0 for an
// undefined kind.
func (l *Ledger[K]) AvailableSpace(kind K) float64 {
	r, ok := l.records[kind]
	if !ok {
		return 0
	}
	if r.maxCapacity <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, r.maxCapacity-r.amount)
}

// Has reports whether the current amount for kind is at least amount.
func (l *Ledger[K]) Has(kind K, amount float64) bool {
	return l.Get(kind) >= amount
}

// HasSpace reports whether delta more units fit under the capacity.
// Always true for an unlimited defined kind, always false for an undefined
// kind.
func (l *Ledger[K]) HasSpace(kind K, delta float64) bool {
	r, ok := l.records[kind]
	if !ok {
		return false
	}
	if r.maxCapacity <= 0 {
		return true
	}
	return r.amount+delta <= r.maxCapacity
}

// Add increases the amount for kind by delta, applying the kind's overflow
// policy when the result would exceed a positive capacity. A negative delta
// delegates to Remove.
func (l *Ledger[K]) Add(kind K, delta float64) Status {
	if delta < 0 {
		return l.Remove(kind, -delta)
	}
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	next := r.amount + delta
	if r.maxCapacity > 0 && next > r.maxCapacity {
		switch r.overflow {
		case OverflowClamp:
			r.amount = r.maxCapacity
			return StatusSuccess
		case OverflowReject:
			return StatusOverflow
		}
		// OverflowAllow: capacity ignored for this call.
	}
	r.amount = next
	return StatusSuccess
}

// Remove decreases the amount for kind by delta, applying the kind's deficit
// policy when the result would drop below zero. A negative delta delegates
// to Add.
func (l *Ledger[K]) Remove(kind K, delta float64) Status {
	if delta < 0 {
		return l.Add(kind, -delta)
	}
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	next := r.amount - delta
	if next < 0 {
		switch r.deficit {
		case DeficitClamp:
			r.amount = 0
			return StatusSuccess
		case DeficitReject:
			return StatusInsufficient
		}
		// DeficitAllowNegative: the amount may go below zero.
	}
	r.amount = next
	return StatusSuccess
}

// Set assigns the amount for kind directly. The value still runs through the
// overflow check (above a positive capacity) and the deficit check (below
// zero); both are policy-gated, not unconditional clamps.
func (l *Ledger[K]) Set(kind K, value float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	if r.maxCapacity > 0 && value > r.maxCapacity {
		switch r.overflow {
		case OverflowClamp:
			r.amount = r.maxCapacity
			return StatusSuccess
		case OverflowReject:
			return StatusOverflow
		}
	}
	if value < 0 {
		switch r.deficit {
		case DeficitClamp:
			r.amount = 0
			return StatusSuccess
		case DeficitReject:
			return StatusInsufficient
		}
	}
	r.amount = value
	return StatusSuccess
}

// SetCapacity assigns a new capacity for kind. Reducing capacity below the
// current amount always clamps the amount down, regardless of the overflow
// policy: capacity reduction is a reconfiguration, not a flow operation.
func (l *Ledger[K]) SetCapacity(kind K, capacity float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	r.maxCapacity = capacity
	if capacity > 0 && r.amount > capacity {
		r.amount = capacity
	}
	return StatusSuccess
}

// Clear sets the amount to 0 for every defined kind. Rates, capacities, and
// policies are untouched.
func (l *Ledger[K]) Clear() {
	for _, r := range l.records {
		r.amount = 0
	}
}

// DefinedCount returns the number of defined kinds.
func (l *Ledger[K]) DefinedCount() int {
	return len(l.records)
}

// DefinedKinds returns every defined kind in unspecified order.
func (l *Ledger[K]) DefinedKinds() []K {
	kinds := make([]K, 0, len(l.records))
	for k := range l.records {
		kinds = append(kinds, k)
	}
	return kinds
}

// DisplayName returns the configured display name for kind. The second
// return is false when the kind is undefined or has no display name.
func (l *Ledger[K]) DisplayName(kind K) (string, bool) {
	r, ok := l.records[kind]
	if !ok || r.displayName == nil {
		return "", false
	}
	return *r.displayName, true
}

// Record returns a read-only copy of the full state for kind, or false for
// an undefined kind.
func (l *Ledger[K]) Record(kind K) (Record, bool) {
	r, ok := l.records[kind]
	if !ok {
		return Record{}, false
	}
	return Record{
		Amount:          r.amount,
		MaxCapacity:     r.maxCapacity,
		ProductionRate:  r.productionRate,
		ConsumptionRate: r.consumptionRate,
		OverflowPolicy:  r.overflow,
		DeficitPolicy:   r.deficit,
		DisplayName:     r.displayName,
	}, true
}

// Summary returns the quantities and rates for kind, or false for an
// undefined kind.
func (l *Ledger[K]) Summary(kind K) (Summary, bool) {
	r, ok := l.records[kind]
	if !ok {
		return Summary{}, false
	}
	return Summary{
		Amount:      r.amount,
		Capacity:    r.maxCapacity,
		Production:  r.productionRate,
		Consumption: r.consumptionRate,
		NetRate:     r.productionRate - r.consumptionRate,
		FillRatio:   l.FillRatio(kind),
	}, true
}
