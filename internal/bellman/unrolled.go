package bellman

import "context"

// UnrolledLoop is the tight-loop rendition of the kernel, registered under
// the name "compiled". In an interpreted environment this variant would be
// the one handed to a JIT; in an ahead-of-time compiled language the
// equivalent is a flat-slice loop arranged so the compiler can keep the hot
// path in registers and hoist bounds checks:
//
//   - the row slices are rebound once per row (vrow, erow, out), which lets
//     the compiler prove the inner indices in range and drop per-element
//     bounds checks;
//   - the inner loop is manually unrolled by 4 to cut loop overhead, with a
//     scalar tail for the remainder.
//
// Each element is still computed as a single e + beta*v, in row-major order,
// so the output is bit-identical to NaiveLoop: same scalar operations, same
// order, no reassociation.
type UnrolledLoop struct{}

// Name returns the descriptive name of the strategy.
func (ul *UnrolledLoop) Name() string {
	return "Unrolled Loop (flat slices, 4x)"
}

// UpdateCore performs the pass over raw backing slices with 4× unrolling.
func (ul *UnrolledLoop) UpdateCore(ctx context.Context, reporter ProgressReporter, g *Grid, opts Options) error {
	n := g.N
	beta := g.Beta
	v := g.V[:n]
	lastReported := 0.0

	for i := 0; i < n; i++ {
		if i%opts.CancelCheckRows == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		erow := g.E[i*n : i*n+n]
		out := g.Vmat[i*n : i*n+n]

		j := 0
		for ; j+4 <= n; j += 4 {
			out[j] = erow[j] + beta*v[j]
			out[j+1] = erow[j+1] + beta*v[j+1]
			out[j+2] = erow[j+2] + beta*v[j+2]
			out[j+3] = erow[j+3] + beta*v[j+3]
		}
		for ; j < n; j++ {
			out[j] = erow[j] + beta*v[j]
		}

		reportRowProgress(reporter, &lastReported, i, n)
	}
	return nil
}
