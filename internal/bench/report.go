package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteTable renders the results as an aligned text comparison table.
// The fastest strategy by minimum duration is marked in the last column.
func WriteTable(w io.Writer, results []Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}

	fastest := results[0].Min
	fastestName := results[0].Name
	for _, res := range results[1:] {
		if res.Min < fastest {
			fastest = res.Min
			fastestName = res.Name
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "STRATEGY\tALGORITHM\tRUNS\tMIN\tMEAN\tMAX\tVS FASTEST\t\n")
	for _, res := range results {
		marker := ""
		if res.Name == fastestName {
			marker = "  <- fastest"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%.2fx%s\t\n",
			res.Name,
			res.Algorithm,
			len(res.Runs),
			formatDuration(res.Min),
			formatDuration(res.Mean),
			formatDuration(res.Max),
			ratio(res.Min, fastest),
			marker,
		)
	}
	return tw.Flush()
}

// ratio returns d/base, guarding against a zero base on very fast runs.
func ratio(d, base time.Duration) float64 {
	if base <= 0 {
		return 1
	}
	return float64(d) / float64(base)
}

// formatDuration trims sub-microsecond noise from the default formatting so
// columns stay readable.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
