// Package analytics aggregates enumerated candidates into per-token
// weighted counts with provenance sets.
//
// A Tally is not safe for concurrent use. Parallel callers give each worker
// its own Tally and fold them together with Merge from a single goroutine.
package analytics
