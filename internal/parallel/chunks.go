// Package parallel provides utilities for concurrent operations.
package parallel

// Span is a half-open index range [Start, End).
type Span struct {
	Start int
	End   int
}

// Chunks partitions the range [0, n) into at most workers contiguous spans of
// near-equal size. The first n%workers spans are one element longer, so the
// sizes of any two spans differ by at most one.
//
// If workers <= 0 it is treated as 1. If n <= 0 the result is empty. Fewer
// than workers spans are returned when n < workers; no empty span is ever
// produced.
//
// Parameters:
//   - n: The number of elements to partition.
//   - workers: The requested number of spans.
//
// Returns:
//   - []Span: The contiguous, non-overlapping spans covering [0, n).
func Chunks(n, workers int) []Span {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	spans := make([]Span, 0, workers)
	size := n / workers
	rem := n % workers

	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < rem {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
