package bench

import (
	"context"
	"time"

	"github.com/mchassin/bellbench/internal/bellman"
)

// Measurement is one timed pass of one strategy.
type Measurement struct {
	// Run is the zero-based repeat index.
	Run int
	// Elapsed is the wall-clock duration of the pass.
	Elapsed time.Duration
}

// Seconds returns the measurement as a real number of seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Result aggregates the measurements of one strategy across repeats.
type Result struct {
	// Name is the registry name of the strategy (e.g. "naive").
	Name string
	// Algorithm is the strategy's display name.
	Algorithm string
	// N is the grid dimension used.
	N int
	// Beta is the discount factor used.
	Beta float64
	// Runs holds the individual measurements in execution order. The first
	// run includes any one-time costs of the strategy.
	Runs []Measurement
	// Min, Mean and Max summarize Runs.
	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
}

// observerUpdater is implemented by updaters that support observer-based
// progress reporting in addition to the channel-based Update.
type observerUpdater interface {
	UpdateWithObservers(ctx context.Context, subject *bellman.ProgressSubject, updaterIndex int, g *bellman.Grid, opts bellman.Options) error
}

// Runner executes timed comparison runs of registered update strategies.
type Runner struct {
	// Factory resolves strategy names to updaters.
	Factory bellman.UpdaterFactory
	// Repeats is the number of timed passes per strategy. Values below 1 are
	// treated as 1.
	Repeats int
	// Options configures each pass.
	Options bellman.Options
	// Progress, if non-nil, receives progress events from the running
	// strategies.
	Progress *bellman.ProgressSubject
}

// NewRunner creates a Runner over the given factory with the given number of
// repeats per strategy.
func NewRunner(factory bellman.UpdaterFactory, repeats int) *Runner {
	if repeats < 1 {
		repeats = 1
	}
	return &Runner{Factory: factory, Repeats: repeats}
}

// Run times every named strategy over a shared deterministic input grid of
// dimension n and returns one Result per strategy, in argument order.
//
// Each strategy gets a fresh zeroed output buffer per pass, so repeated
// passes measure the same work. The input fill is non-zero so the pass
// exercises real arithmetic; initialization itself stays zero-filled as in
// NewGrid.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - names: Registry names of the strategies to run.
//   - n: The grid dimension.
//   - beta: The discount factor.
//
// Returns:
//   - []Result: One aggregated result per strategy.
//   - error: The first error encountered (unknown strategy, shape fault,
//     cancellation).
func (r *Runner) Run(ctx context.Context, names []string, n int, beta float64) ([]Result, error) {
	g, err := bellman.NewGrid(n, beta)
	if err != nil {
		return nil, err
	}
	g.Fill()

	results := make([]Result, 0, len(names))
	for idx, name := range names {
		updater, err := r.Factory.Get(name)
		if err != nil {
			return nil, err
		}

		res := Result{
			Name:      name,
			Algorithm: updater.Name(),
			N:         n,
			Beta:      beta,
			Runs:      make([]Measurement, 0, r.Repeats),
		}

		for run := 0; run < r.Repeats; run++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			g.ResetVmat()

			elapsed, err := Time(func() error {
				if ou, ok := updater.(observerUpdater); ok && r.Progress != nil {
					return ou.UpdateWithObservers(ctx, r.Progress, idx, g, r.Options)
				}
				return updater.Update(ctx, nil, idx, g, r.Options)
			})
			if err != nil {
				return nil, err
			}
			res.Runs = append(res.Runs, Measurement{Run: run, Elapsed: elapsed})
		}

		summarize(&res)
		results = append(results, res)
	}
	return results, nil
}

// summarize fills Min, Mean and Max from Runs.
func summarize(res *Result) {
	if len(res.Runs) == 0 {
		return
	}
	var total time.Duration
	res.Min = res.Runs[0].Elapsed
	res.Max = res.Runs[0].Elapsed
	for _, m := range res.Runs {
		total += m.Elapsed
		if m.Elapsed < res.Min {
			res.Min = m.Elapsed
		}
		if m.Elapsed > res.Max {
			res.Max = m.Elapsed
		}
	}
	res.Mean = total / time.Duration(len(res.Runs))
}
