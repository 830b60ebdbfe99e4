// Package bellman provides implementations of the Bellman value-update kernel.
// This file contains the Grid type holding the kernel's input and output arrays.
package bellman

import (
	"gonum.org/v1/gonum/mat"
)

// Grid holds the arrays for one value-update pass:
//
//	Vmat[i,j] = E[i,j] + Beta * V[j]
//
// V is the value vector (length N), E the immediate payoff matrix (N×N,
// row-major) and Vmat the output matrix (N×N, row-major, same shape as E).
// V and E are read-only during an update; only Vmat is written.
//
// Matrices are stored as flat row-major slices so the loop strategies can
// index them directly and the vectorized strategy can wrap them in gonum
// views without copying.
type Grid struct {
	// N is the grid dimension. N == 0 is a valid, empty grid.
	N int
	// Beta is the discount factor applied to V. No range validation is
	// performed; the kernel is well-defined for any real scalar.
	Beta float64
	// V is the value vector, length N.
	V []float64
	// E is the payoff matrix, length N*N, row-major.
	E []float64
	// Vmat is the output matrix, length N*N, row-major.
	Vmat []float64
}

// NewGrid allocates a zero-filled grid of dimension n with discount factor
// beta. Allocation is O(n²).
//
// Parameters:
//   - n: The grid dimension. n == 0 yields an empty grid; n < 0 is rejected.
//   - beta: The discount factor.
//
// Returns:
//   - *Grid: The freshly allocated grid.
//   - error: ErrInvalidSize if n is negative.
func NewGrid(n int, beta float64) (*Grid, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return &Grid{
		N:    n,
		Beta: beta,
		V:    make([]float64, n),
		E:    make([]float64, n*n),
		Vmat: make([]float64, n*n),
	}, nil
}

// Validate checks that the buffer lengths agree with N.
//
// Returns:
//   - error: ErrInvalidSize, ErrShapeMismatch (wrapped with the offending
//     buffer) or nil.
func (g *Grid) Validate() error {
	if g == nil {
		return ErrNilGrid
	}
	if g.N < 0 {
		return ErrInvalidSize
	}
	if len(g.V) != g.N {
		return shapeError("V", len(g.V), g.N)
	}
	if len(g.E) != g.N*g.N {
		return shapeError("E", len(g.E), g.N*g.N)
	}
	if len(g.Vmat) != g.N*g.N {
		return shapeError("Vmat", len(g.Vmat), g.N*g.N)
	}
	return nil
}

// EDense returns a gonum view over E sharing the grid's backing array.
// Must not be called on an empty grid; gonum rejects zero dimensions.
func (g *Grid) EDense() *mat.Dense {
	return mat.NewDense(g.N, g.N, g.E)
}

// VmatDense returns a gonum view over Vmat sharing the grid's backing array.
// Must not be called on an empty grid.
func (g *Grid) VmatDense() *mat.Dense {
	return mat.NewDense(g.N, g.N, g.Vmat)
}

// VVec returns a gonum vector view over V sharing the grid's backing array.
// Must not be called on an empty grid.
func (g *Grid) VVec() *mat.VecDense {
	return mat.NewVecDense(g.N, g.V)
}

// ResetVmat zeroes the output matrix so the grid can be reused for a fresh
// timed pass without reallocating.
func (g *Grid) ResetVmat() {
	clear(g.Vmat)
}

// Fill populates V and E with a deterministic non-zero pattern so benchmark
// runs exercise real arithmetic instead of adding zeros. The pattern walks
// prime strides through fixed residue ranges, keeping every entry in
// [-1, 1] regardless of N. Plain rational arithmetic rather than libm, so
// the values are reproducible bit for bit on every platform; the golden
// testdata depends on that. Vmat is left zeroed.
func (g *Grid) Fill() {
	for j := range g.V {
		g.V[j] = float64((j%101)*37%101)/50 - 1
	}
	for k := range g.E {
		g.E[k] = float64((k%211)*61%211)/105 - 1
	}
}
