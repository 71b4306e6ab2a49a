package ledger

// Definition describes one resource kind for Define. Policies left empty are
// replaced with DefaultOverflowPolicy and DefaultDeficitPolicy. A nil
// DisplayName means the kind has no configured display name.
type Definition struct {
	// InitialAmount is the starting quantity. It is not validated against
	// MaxCapacity or the policies; a definition may start out of bounds and
	// is never auto-corrected.
	InitialAmount float64

	// MaxCapacity is the storage ceiling; 0 means unlimited.
	MaxCapacity float64

	OverflowPolicy OverflowPolicy
	DeficitPolicy  DeficitPolicy

	DisplayName *string
}

// record is the per-kind state owned by a Ledger. Presence in the ledger's
// map is what makes a kind defined.
type record struct {
	amount          float64
	maxCapacity     float64
	productionRate  float64
	consumptionRate float64
	overflow        OverflowPolicy
	deficit         DeficitPolicy
	displayName     *string
}

// Record is a read-only copy of a kind's full state, for inspection and
// persistence by collaborators outside the ledger.
type Record struct {
	Amount          float64
	MaxCapacity     float64
	ProductionRate  float64
	ConsumptionRate float64
	OverflowPolicy  OverflowPolicy
	DeficitPolicy   DeficitPolicy
	DisplayName     *string
}

// Summary is a point-in-time view of one kind's quantities and rates.
type Summary struct {
	Amount      float64
	Capacity    float64
	Production  float64
	Consumption float64
	NetRate     float64
	FillRatio   float64
}

// KindDefinition pairs a resource kind with its Definition, for DefineMany.
type KindDefinition[K comparable] struct {
	Kind       K
	Definition Definition
}

// Cost pairs a resource kind with an amount, for cost lists and bulk grants.
type Cost[K comparable] struct {
	Kind   K
	Amount float64
}
