// Package bellman provides implementations of the Bellman value-update kernel.
// This file contains configuration options for update execution.
package bellman

import "runtime"

// Options configures the execution of an update strategy.
// The zero value selects sensible defaults for every field.
type Options struct {
	// Workers is the number of goroutines used by the parallel strategy.
	// If 0, runtime.GOMAXPROCS(0) is used. The three single-threaded
	// strategies ignore this field.
	Workers int
	// CancelCheckRows is the number of rows processed between context
	// cancellation checks in the loop-based strategies.
	// If 0, DefaultCancelCheckRows is used.
	CancelCheckRows int
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, so every strategy sees the same effective configuration.
//
// Parameters:
//   - opts: The options to normalize.
//
// Returns:
//   - Options: A normalized copy of opts with defaults applied.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.Workers <= 0 {
		normalized.Workers = runtime.GOMAXPROCS(0)
	}
	if normalized.CancelCheckRows <= 0 {
		normalized.CancelCheckRows = DefaultCancelCheckRows
	}
	return normalized
}
