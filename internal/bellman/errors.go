// Package bellman provides implementations of the Bellman value-update kernel.
// This file defines the package's error taxonomy.
package bellman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a grid was requested with a negative dimension.
	ErrInvalidSize = errors.New("bellman: grid size must be non-negative")

	// ErrShapeMismatch indicates the grid buffers do not agree with the declared
	// dimension N. The mismatch is fatal to the call in progress; no partial
	// output is produced.
	ErrShapeMismatch = errors.New("bellman: shape mismatch")

	// ErrNilGrid indicates an update was invoked without a grid.
	ErrNilGrid = errors.New("bellman: grid must not be nil")
)

// shapeError wraps ErrShapeMismatch with the offending buffer and its sizes.
func shapeError(buffer string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrShapeMismatch, buffer, got, want)
}

// UnknownUpdaterError is returned when an updater name is not registered.
type UnknownUpdaterError struct {
	Name string
}

func (e *UnknownUpdaterError) Error() string {
	return "unknown updater: " + e.Name
}
