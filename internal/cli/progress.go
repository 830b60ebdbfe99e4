// Package cli provides the command-line output surfaces: progress display
// and result rendering.
package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressState tracks normalized progress values for a set of updaters and
// aggregates them into one overall figure. It is safe for concurrent use;
// the parallel strategy reports from multiple goroutines.
type ProgressState struct {
	mu     sync.Mutex
	values []float64
}

// NewProgressState creates a tracker for numUpdaters concurrent updaters.
func NewProgressState(numUpdaters int) *ProgressState {
	if numUpdaters < 1 {
		numUpdaters = 1
	}
	return &ProgressState{values: make([]float64, numUpdaters)}
}

// Update records the progress of one updater. Out-of-range indices and
// regressions are ignored; progress never moves backwards.
func (p *ProgressState) Update(index int, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.values) {
		return
	}
	if value > p.values[index] {
		p.values[index] = value
	}
}

// CalculateAverage returns the mean progress across all tracked updaters.
func (p *ProgressState) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0.0
	for _, v := range p.values {
		total += v
	}
	return total / float64(len(p.values))
}

// SpinnerObserver is a bellman.ProgressObserver that drives a terminal
// spinner, showing aggregate progress as a percentage suffix.
type SpinnerObserver struct {
	state   *ProgressState
	spinner *spinner.Spinner
	label   string
}

// NewSpinnerObserver creates a spinner-backed observer for numUpdaters
// updaters. The spinner is not started; call Start and Stop around the run.
func NewSpinnerObserver(numUpdaters int, label string) *SpinnerObserver {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + label
	return &SpinnerObserver{
		state:   NewProgressState(numUpdaters),
		spinner: s,
		label:   label,
	}
}

// Start begins the spinner animation.
func (o *SpinnerObserver) Start() { o.spinner.Start() }

// Stop halts the spinner animation.
func (o *SpinnerObserver) Stop() { o.spinner.Stop() }

// SetLabel replaces the text shown next to the spinner.
func (o *SpinnerObserver) SetLabel(label string) {
	o.label = label
	o.spinner.Suffix = " " + label
}

// Update implements bellman.ProgressObserver.
func (o *SpinnerObserver) Update(updaterIndex int, progress float64) {
	o.state.Update(updaterIndex, progress)
	avg := o.state.CalculateAverage()
	o.spinner.Suffix = fmt.Sprintf(" %s %3.0f%%", o.label, avg*100)
}
