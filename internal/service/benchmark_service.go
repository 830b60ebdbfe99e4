// Package service contains the orchestration logic shared by the CLI and the
// HTTP API: input validation, strategy resolution and timed execution.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/mchassin/bellbench/internal/bellman"
	"github.com/mchassin/bellbench/internal/bench"
)

var (
	// ErrMaxSizeExceeded is returned when n exceeds the configured maximum
	// grid size.
	ErrMaxSizeExceeded = errors.New("maximum grid size exceeded")
)

// RunResult describes one timed pass of one strategy.
type RunResult struct {
	// Name is the registry name of the strategy.
	Name string
	// Algorithm is the strategy's display name.
	Algorithm string
	// N is the grid dimension used.
	N int
	// Beta is the discount factor used.
	Beta float64
	// Elapsed is the measured wall-clock duration of the pass.
	Elapsed time.Duration
}

// Seconds returns the elapsed time as a real number of seconds.
func (r *RunResult) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Service defines the interface for timed value-update runs.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Run executes and times one pass of the named strategy over a fresh
	// grid of dimension n.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - name: The registry name of the strategy to use.
	//   - n: The grid dimension.
	//   - beta: The discount factor.
	//
	// Returns:
	//   - *RunResult: The timed result.
	//   - error: An error if validation or execution fails.
	Run(ctx context.Context, name string, n int, beta float64) (*RunResult, error)
}

// BenchmarkService handles the core logic for timed value-update runs.
// It centralizes validation, strategy retrieval and execution options.
// Implements the Service interface.
type BenchmarkService struct {
	factory bellman.UpdaterFactory
	opts    bellman.Options
	maxN    int
}

// Ensure BenchmarkService implements Service interface.
var _ Service = (*BenchmarkService)(nil)

// NewBenchmarkService creates a new instance of BenchmarkService.
//
// Parameters:
//   - factory: The factory to retrieve updaters from.
//   - opts: The execution options applied to every pass.
//   - maxN: The maximum allowed grid dimension (0 for no limit).
func NewBenchmarkService(factory bellman.UpdaterFactory, opts bellman.Options, maxN int) *BenchmarkService {
	return &BenchmarkService{
		factory: factory,
		opts:    opts,
		maxN:    maxN,
	}
}

// Run retrieves the requested strategy and executes one timed pass over a
// fresh deterministically-filled grid. It also validates n against the
// configured cap.
func (s *BenchmarkService) Run(ctx context.Context, name string, n int, beta float64) (*RunResult, error) {
	// Validation
	if s.maxN > 0 && n > s.maxN {
		return nil, ErrMaxSizeExceeded
	}

	// Retrieve strategy
	updater, err := s.factory.Get(name)
	if err != nil {
		return nil, err
	}

	// Negative n is rejected here, before any allocation
	g, err := bellman.NewGrid(n, beta)
	if err != nil {
		return nil, err
	}
	g.Fill()

	// Note: progress is not surfaced for service runs; the HTTP caller only
	// sees the final timing.
	elapsed, err := bench.Time(func() error {
		return updater.Update(ctx, nil, 0, g, s.opts)
	})
	if err != nil {
		return nil, err
	}

	return &RunResult{
		Name:      name,
		Algorithm: updater.Name(),
		N:         n,
		Beta:      beta,
		Elapsed:   elapsed,
	}, nil
}
