// Package bellman provides implementations of the Bellman value-update kernel
//
//	Vmat[i,j] = E[i,j] + Beta * V[j]
//
// over an N×N grid. It exposes an `Updater` interface that abstracts the
// execution strategy, allowing a naive per-element loop, a vectorized
// whole-array pass, an unrolled flat-slice loop and a row-parallel pass to be
// used interchangeably and compared. All strategies compute the same result;
// only the execution strategy differs.
package bellman

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	updatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bellman_updates_total",
			Help: "The total number of value-update passes processed",
		},
		[]string{"algorithm", "status"},
	)
	updateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "bellman_update_duration_seconds",
			Help: "The duration of value-update passes in seconds",
		},
		[]string{"algorithm"},
	)
)

// Updater defines the public interface for a value-update strategy.
// It is the primary abstraction used by the orchestration layer to run and
// time the different kernel implementations.
type Updater interface {
	// Update executes one value-update pass over the grid, writing the result
	// into g.Vmat. It supports cancellation through the provided context.
	// Progress updates are sent asynchronously to progressChan if non-nil.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates (may be nil).
	//   - updaterIndex: A unique index for the updater instance.
	//   - g: The grid to update. V and E are read-only; only Vmat is written.
	//   - opts: Configuration options for the pass.
	//
	// Returns:
	//   - error: An error if one occurred (shape mismatch, cancellation).
	Update(ctx context.Context, progressChan chan<- ProgressUpdate, updaterIndex int, g *Grid, opts Options) error

	// Name returns the display name of the execution strategy.
	Name() string
}

// coreUpdater defines the internal interface for a pure kernel
// implementation. Cores may assume the grid has already been validated.
type coreUpdater interface {
	UpdateCore(ctx context.Context, reporter ProgressReporter, g *Grid, opts Options) error
	Name() string
}

// BellmanUpdater implements the Updater interface using the Decorator
// pattern. It wraps a coreUpdater to add cross-cutting concerns: grid
// validation, the empty-grid fast path, metrics, tracing and the adaptation
// of the progress reporting mechanism.
type BellmanUpdater struct {
	core coreUpdater
}

// NewUpdater constructs a BellmanUpdater around the given core strategy.
// It panics if core is nil, ensuring system integrity.
func NewUpdater(core coreUpdater) Updater {
	if core == nil {
		panic("bellman: the `coreUpdater` implementation cannot be nil")
	}
	return &BellmanUpdater{core: core}
}

// Name returns the name of the encapsulated coreUpdater.
func (u *BellmanUpdater) Name() string {
	return u.core.Name()
}

// Update orchestrates one value-update pass.
// It adapts the progressChan into the observer mechanism and delegates to
// UpdateWithObservers. This method provides channel-based progress reporting
// compatibility; for multiple or custom observers use UpdateWithObservers.
func (u *BellmanUpdater) Update(ctx context.Context, progressChan chan<- ProgressUpdate, updaterIndex int, g *Grid, opts Options) error {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return u.UpdateWithObservers(ctx, subject, updaterIndex, g, opts)
}

// UpdateWithObservers executes one pass with observer-based progress
// reporting, allowing dynamic registration of multiple progress observers
// for decoupled handling of progress events (UI, logging, metrics).
//
// The grid is validated before the core runs: mismatched buffer lengths
// surface immediately as ErrShapeMismatch rather than as an out-of-bounds
// fault inside the kernel. An empty grid (N == 0) is a valid no-op.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - subject: The progress subject with registered observers. If nil,
//     progress is ignored.
//   - updaterIndex: A unique index for the updater instance.
//   - g: The grid to update.
//   - opts: Configuration options for the pass.
//
// Returns:
//   - error: An error if one occurred.
func (u *BellmanUpdater) UpdateWithObservers(ctx context.Context, subject *ProgressSubject, updaterIndex int, g *Grid, opts Options) (err error) {
	tracer := otel.Tracer("bellman")
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := u.core.Name()
		updatesTotal.WithLabelValues(algoName, status).Inc()
		updateDuration.WithLabelValues(algoName).Observe(duration)

		n := 0
		if g != nil {
			n = g.N
		}
		log.Debug().
			Str("algo", algoName).
			Int("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("update completed")
	}()

	if err = g.Validate(); err != nil {
		return err
	}

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter(updaterIndex)
	} else {
		reporter = func(float64) {} // No-op reporter
	}

	if g.N == 0 {
		reporter(1.0)
		return nil
	}

	normalized := normalizeOptions(opts)
	if err = u.core.UpdateCore(ctx, reporter, g, normalized); err != nil {
		return err
	}
	reporter(1.0)
	return nil
}
