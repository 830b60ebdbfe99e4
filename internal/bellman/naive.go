package bellman

import "context"

// NaiveLoop is the reference implementation of the value-update kernel.
// It iterates the grid with explicit nested control flow, computing each
// element independently:
//
//	for i in [0, N): for j in [0, N): Vmat[i,j] = E[i,j] + Beta * V[j]
//
// This is the slow baseline the other strategies are measured against:
// O(N²) time, one scalar read-modify-write per element, no unrolling and no
// attempt to help the compiler beyond what the plain loop already gets.
// Every other strategy must reproduce its output; the scalar strategies
// match it exactly and the vectorized one stays within floating-point
// rounding, since each element is the result of the same two scalar
// operations.
type NaiveLoop struct{}

// Name returns the descriptive name of the strategy.
func (nl *NaiveLoop) Name() string {
	return "Naive Loop (O(N²), per-element)"
}

// UpdateCore performs the pass with explicit double iteration.
// Cancellation is checked every opts.CancelCheckRows rows so a long pass can
// be interrupted without the check appearing in the inner loop.
func (nl *NaiveLoop) UpdateCore(ctx context.Context, reporter ProgressReporter, g *Grid, opts Options) error {
	n := g.N
	beta := g.Beta
	lastReported := 0.0

	for i := 0; i < n; i++ {
		if i%opts.CancelCheckRows == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		base := i * n
		for j := 0; j < n; j++ {
			g.Vmat[base+j] = g.E[base+j] + beta*g.V[j]
		}

		reportRowProgress(reporter, &lastReported, i, n)
	}
	return nil
}
