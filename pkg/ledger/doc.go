// Package ledger implements a generic resource ledger for simulations and
// games with an internal economy. A Ledger tracks per-kind quantity,
// capacity, and production/consumption rates for a caller-defined closed set
// of resource kinds, and enforces configurable overflow and deficit policies
// on every mutation.
//
// The ledger is single-owner and performs no locking; wrap it in external
// synchronization if it must be shared. Fallible operations return a Status
// from a closed set rather than an error.
package ledger
