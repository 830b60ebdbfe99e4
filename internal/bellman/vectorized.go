package bellman

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// Vectorized computes the kernel with whole-array operations instead of
// explicit per-element iteration.
//
// Broadcasting V across the rows of an N×N matrix and adding it to E is
// exactly a rank-one update:
//
//	Vmat = E + Beta * 1 · Vᵀ
//
// where 1 is the all-ones column vector of length N. Gonum lowers RankOne to
// a single BLAS dger call, so the entire pass is one library-level array
// operation over the grid's backing slices, with no per-element Go code.
//
// The result matches NaiveLoop within floating-point rounding: each output
// element is still e + beta*v, but the multiply-accumulate may be fused or
// reordered inside the BLAS kernel, so exact bit equality is not guaranteed.
type Vectorized struct{}

// Name returns the descriptive name of the strategy.
func (vz *Vectorized) Name() string {
	return "Vectorized (gonum rank-one broadcast)"
}

// UpdateCore performs the pass as a single rank-one update.
// Progress is inherently all-or-nothing for a whole-array operation, so only
// completion is reported.
func (vz *Vectorized) UpdateCore(ctx context.Context, reporter ProgressReporter, g *Grid, opts Options) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ones := mat.NewVecDense(g.N, nil)
	for i := 0; i < g.N; i++ {
		ones.SetVec(i, 1)
	}

	// Vmat, E and V are distinct backing arrays, so the views do not alias.
	g.VmatDense().RankOne(g.EDense(), g.Beta, ones, g.VVec())

	if reporter != nil {
		reporter(1.0)
	}
	return nil
}
