package bellman

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mchassin/bellbench/internal/parallel"
)

// ParallelLoop partitions the grid's rows across opts.Workers goroutines and
// runs the unrolled flat-slice kernel on each partition. Rows are
// independent (each output row reads only its own E row plus the shared
// read-only V), so no locking is needed and the result is bit-identical to
// NaiveLoop regardless of scheduling.
//
// For grids below MinParallelRows the fan-out cost exceeds the work of the
// whole pass, so the kernel runs on the calling goroutine instead.
type ParallelLoop struct{}

// Name returns the descriptive name of the strategy.
func (pl *ParallelLoop) Name() string {
	return "Parallel Rows (errgroup)"
}

// UpdateCore performs the pass with row-partitioned goroutines.
// Progress is reported per completed partition from whichever goroutine
// finishes it; ProgressSubject is safe for concurrent notification.
func (pl *ParallelLoop) UpdateCore(ctx context.Context, reporter ProgressReporter, g *Grid, opts Options) error {
	n := g.N
	if n < MinParallelRows || opts.Workers <= 1 {
		return (&UnrolledLoop{}).UpdateCore(ctx, reporter, g, opts)
	}

	spans := parallel.Chunks(n, opts.Workers)
	var rowsDone atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	for _, span := range spans {
		eg.Go(func() error {
			if err := updateRows(ctx, g, span.Start, span.End, opts.CancelCheckRows); err != nil {
				return err
			}
			if reporter != nil {
				done := rowsDone.Add(int64(span.End - span.Start))
				reporter(float64(done) / float64(n))
			}
			return nil
		})
	}
	return eg.Wait()
}

// updateRows runs the unrolled kernel over rows [lo, hi).
func updateRows(ctx context.Context, g *Grid, lo, hi, cancelCheckRows int) error {
	n := g.N
	beta := g.Beta
	v := g.V[:n]

	for i := lo; i < hi; i++ {
		if (i-lo)%cancelCheckRows == 0 {
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
	}
	return nil
}
