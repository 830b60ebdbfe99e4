package bellman

import (
	"sync"
	"testing"
)

// recordingObserver captures every notification it receives.
type recordingObserver struct {
	mu     sync.Mutex
	events []ProgressUpdate
}

func (r *recordingObserver) Update(updaterIndex int, progress float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ProgressUpdate{UpdaterIndex: updaterIndex, Value: progress})
}

func (r *recordingObserver) last() (ProgressUpdate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return ProgressUpdate{}, false
	}
	return r.events[len(r.events)-1], true
}

// TestProgressSubjectRegisterNotify tests basic observer wiring.
func TestProgressSubjectRegisterNotify(t *testing.T) {
	t.Parallel()
	s := NewProgressSubject()
	a := &recordingObserver{}
	b := &recordingObserver{}

	s.Register(a)
	s.Register(b)
	s.Register(nil) // no-op
	if s.ObserverCount() != 2 {
		t.Fatalf("expected 2 observers, got %d", s.ObserverCount())
	}

	s.Notify(3, 0.5)
	for _, o := range []*recordingObserver{a, b} {
		got, ok := o.last()
		if !ok || got.UpdaterIndex != 3 || got.Value != 0.5 {
			t.Errorf("observer missed notification, got %+v ok=%v", got, ok)
		}
	}
}

// TestProgressSubjectUnregister tests observer removal.
func TestProgressSubjectUnregister(t *testing.T) {
	t.Parallel()
	s := NewProgressSubject()
	a := &recordingObserver{}
	b := &recordingObserver{}
	s.Register(a)
	s.Register(b)

	s.Unregister(a)
	if s.ObserverCount() != 1 {
		t.Fatalf("expected 1 observer, got %d", s.ObserverCount())
	}

	s.Notify(0, 1.0)
	if _, ok := a.last(); ok {
		t.Error("unregistered observer still notified")
	}
	if _, ok := b.last(); !ok {
		t.Error("remaining observer not notified")
	}

	// Unregistering again is a no-op
	s.Unregister(a)
	s.Unregister(nil)
}

// TestAsProgressReporter tests the functional adapter.
func TestAsProgressReporter(t *testing.T) {
	t.Parallel()
	s := NewProgressSubject()
	a := &recordingObserver{}
	s.Register(a)

	reporter := s.AsProgressReporter(9)
	reporter(0.25)

	got, ok := a.last()
	if !ok || got.UpdaterIndex != 9 || got.Value != 0.25 {
		t.Errorf("reporter did not forward, got %+v ok=%v", got, ok)
	}
}

// TestChannelObserver tests the channel bridge.
func TestChannelObserver(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 1)
	o := NewChannelObserver(ch)
	o.Update(2, 0.75)

	select {
	case p := <-ch:
		if p.UpdaterIndex != 2 || p.Value != 0.75 {
			t.Errorf("unexpected update %+v", p)
		}
	default:
		t.Fatal("expected an update on the channel")
	}
}

// TestReportRowProgress tests threshold gating and the final-row guarantee.
func TestReportRowProgress(t *testing.T) {
	t.Parallel()
	var reports []float64
	reporter := func(p float64) { reports = append(reports, p) }

	last := 0.0
	total := 1000
	for i := 0; i < total; i++ {
		reportRowProgress(reporter, &last, i, total)
	}

	if len(reports) == 0 {
		t.Fatal("expected progress reports")
	}
	// Gating must keep the report count near 1/ProgressReportThreshold,
	// not one per row.
	if len(reports) > 120 {
		t.Errorf("too many reports: %d", len(reports))
	}
	if got := reports[len(reports)-1]; got != 1.0 {
		t.Errorf("final report = %v, want 1.0", got)
	}

	// Nil reporter and empty pass are no-ops.
	reportRowProgress(nil, &last, 0, 10)
	reportRowProgress(reporter, &last, 0, 0)
}
