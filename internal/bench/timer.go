// Package bench provides wall-clock timing and comparison runs for the
// value-update strategies.
package bench

import "time"

// Time executes fn once and measures the wall-clock duration from immediately
// before invocation to immediately after. There is no retry, no averaging and
// no warmup exclusion: the first call of a strategy includes any one-time
// costs it carries.
//
// Parameters:
//   - fn: The zero-argument callable to measure.
//
// Returns:
//   - time.Duration: The elapsed wall-clock time (never negative).
//   - error: The error returned by fn, if any. The duration is valid either way.
func Time(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if elapsed < 0 {
		// Monotonic clock makes this unreachable in practice; clamp anyway so
		// callers can rely on non-negative measurements.
		elapsed = 0
	}
	return elapsed, err
}

// Seconds is like Time but reports the elapsed time as a real number of
// seconds, matching the tool's external reporting surface.
func Seconds(fn func() error) (float64, error) {
	elapsed, err := Time(fn)
	return elapsed.Seconds(), err
}
