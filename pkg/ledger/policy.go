package ledger

// OverflowPolicy selects the behavior when an addition would push a kind's
// amount above its capacity.
type OverflowPolicy string

// Overflow policies.
const (
	OverflowClamp  OverflowPolicy = "clamp"
	OverflowReject OverflowPolicy = "reject"
	OverflowAllow  OverflowPolicy = "allow"
)

// DeficitPolicy selects the behavior when a removal would push a kind's
// amount below zero.
type DeficitPolicy string

// Deficit policies.
const (
	DeficitClamp         DeficitPolicy = "clamp"
	DeficitReject        DeficitPolicy = "reject"
	DeficitAllowNegative DeficitPolicy = "allow_negative"
)

// Defaults applied by Define when a Definition leaves a policy unset.
const (
	DefaultOverflowPolicy = OverflowClamp
	DefaultDeficitPolicy  = DeficitReject
)

// validOverflowPolicies is the set of recognized overflow policy values.
var validOverflowPolicies = map[OverflowPolicy]bool{
	OverflowClamp:  true,
	OverflowReject: true,
	OverflowAllow:  true,
}

// validDeficitPolicies is the set of recognized deficit policy values.
var validDeficitPolicies = map[DeficitPolicy]bool{
	DeficitClamp:         true,
	DeficitReject:        true,
	DeficitAllowNegative: true,
}

// ValidOverflowPolicy reports whether p is a recognized overflow policy.
func ValidOverflowPolicy(p OverflowPolicy) bool {
	return validOverflowPolicies[p]
}

// ValidDeficitPolicy reports whether p is a recognized deficit policy.
func ValidDeficitPolicy(p DeficitPolicy) bool {
	return validDeficitPolicies[p]
}

// Status is the outcome of a ledger operation. Callers branch on these;
// there is no richer error payload.
type Status string

// Operation statuses.
const (
	StatusSuccess      Status = "success"
	StatusInsufficient Status = "insufficient"
	StatusOverflow     Status = "overflow"
	StatusNotDefined   Status = "not_defined"
)

// OK reports whether the status is StatusSuccess.
func (s Status) OK() bool {
	return s == StatusSuccess
}
