// Package bellman provides implementations of the Bellman value-update kernel.
// This file contains progress reporting types used by the update strategies.
package bellman

// ProgressUpdate is the data transfer object carrying the progress state of a
// running update. It is sent over a channel from the updater to the user
// interface.
type ProgressUpdate struct {
	// UpdaterIndex identifies the updater instance, allowing the UI to
	// distinguish between multiple concurrent runs.
	UpdaterIndex int
	// Value is the normalized progress of the pass, ranging from 0.0 to 1.0.
	Value float64
}

// ProgressReporter is the functional callback used by core strategies to
// report progress without being coupled to the channel-based mechanism of
// the broader application.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
type ProgressReporter func(progress float64)

// reportRowProgress reports row-based progress for a strategy that sweeps the
// grid one row at a time. Work is linear in the number of rows, so progress
// is simply (row+1)/totalRows. Updates are gated by ProgressReportThreshold
// so the reporting path stays off the hot loop's profile; the final row is
// always reported.
//
// Parameters:
//   - reporter: The callback to invoke.
//   - lastReported: Pointer to the last value reported, updated in place.
//   - row: The zero-based index of the row just completed.
//   - totalRows: The total number of rows in the pass.
func reportRowProgress(reporter ProgressReporter, lastReported *float64, row, totalRows int) {
	if reporter == nil || totalRows == 0 {
		return
	}
	progress := float64(row+1) / float64(totalRows)
	if progress-*lastReported >= ProgressReportThreshold || row == totalRows-1 {
		reporter(progress)
		*lastReported = progress
	}
}
