// Package bellman provides implementations of the Bellman value-update kernel.
// This file contains the Observer pattern implementation for progress events.
package bellman

import "sync"

// ─────────────────────────────────────────────────────────────────────────────
// Observer Pattern Interfaces
// ─────────────────────────────────────────────────────────────────────────────

// ProgressObserver receives notifications when update progress changes,
// decoupling progress consumers (UI, logging, metrics) from the kernel.
type ProgressObserver interface {
	// Update is called when progress changes.
	//
	// Parameters:
	//   - updaterIndex: The updater instance identifier.
	//   - progress: The normalized progress value (0.0 to 1.0).
	Update(updaterIndex int, progress float64)
}

// ChannelObserver forwards progress events to a channel of ProgressUpdate.
// It bridges the observer mechanism to channel-based consumers.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that forwards events to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update sends the progress event on the wrapped channel.
// The send blocks if the channel is full; consumers are expected to drain it.
func (o *ChannelObserver) Update(updaterIndex int, progress float64) {
	if o.ch == nil {
		return
	}
	o.ch <- ProgressUpdate{UpdaterIndex: updaterIndex, Value: progress}
}

// ─────────────────────────────────────────────────────────────────────────────
// Progress Subject (Observable)
// ─────────────────────────────────────────────────────────────────────────────

// ProgressSubject manages observer registration and notification for progress
// events. It is safe for concurrent use.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject creates a new, empty subject ready to accept observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{
		observers: make([]ProgressObserver, 0),
	}
}

// Register adds an observer to receive progress updates.
// Observers are notified in registration order. A nil observer is a no-op.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer. If the observer is not found, this is a
// no-op.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends a progress update to all registered observers, synchronously
// and in registration order.
//
// Parameters:
//   - updaterIndex: The updater instance identifier.
//   - progress: The normalized progress value (0.0 to 1.0).
func (s *ProgressSubject) Notify(updaterIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, observer := range s.observers {
		observer.Update(updaterIndex, progress)
	}
}

// ObserverCount returns the number of registered observers. Primarily useful
// for testing and diagnostics.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsProgressReporter returns a ProgressReporter that notifies all observers,
// for passing into core strategies that use the functional callback type.
//
// Parameters:
//   - updaterIndex: The updater instance identifier to include in events.
//
// Returns:
//   - ProgressReporter: A function that can be passed to core strategies.
func (s *ProgressSubject) AsProgressReporter(updaterIndex int) ProgressReporter {
	return func(progress float64) {
		s.Notify(updaterIndex, progress)
	}
}
