package ledger

// SetProductionRate assigns the per-time-unit production rate for kind.
func (l *Ledger[K]) SetProductionRate(kind K, rate float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	r.productionRate = rate
	return StatusSuccess
}

// AddProductionRate accumulates onto the production rate for kind.
func (l *Ledger[K]) AddProductionRate(kind K, rate float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	r.productionRate += rate
	return StatusSuccess
}

// SetConsumptionRate assigns the per-time-unit consumption rate for kind.
func (l *Ledger[K]) SetConsumptionRate(kind K, rate float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	r.consumptionRate = rate
	return StatusSuccess
}

// AddConsumptionRate accumulates onto the consumption rate for kind.
func (l *Ledger[K]) AddConsumptionRate(kind K, rate float64) Status {
	r, ok := l.records[kind]
	if !ok {
		return StatusNotDefined
	}
	r.consumptionRate += rate
	return StatusSuccess
}

// NetRate returns production minus consumption for kind, or 0 for an
// undefined kind. The net rate is always derived, never stored.
func (l *Ledger[K]) NetRate(kind K) float64 {
	r, ok := l.records[kind]
	if !ok {
		return 0
	}
	return r.productionRate - r.consumptionRate
}

// ResetRates zeroes both rates for every defined kind. Amounts are
// untouched.
func (l *Ledger[K]) ResetRates() {
	for _, r := range l.records {
		r.productionRate = 0
		r.consumptionRate = 0
	}
}

// ApplyRates integrates each kind's net rate over deltaTime, routing positive
// change through Add and negative change through Remove so the overflow and
// deficit policies still apply. Each kind's update is independent; iteration
// order is unspecified.
func (l *Ledger[K]) ApplyRates(deltaTime float64) {
	for kind, r := range l.records {
		change := (r.productionRate - r.consumptionRate) * deltaTime
		switch {
		case change > 0:
			l.Add(kind, change)
		case change < 0:
			l.Remove(kind, -change)
		}
	}
}
