package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mchassin/bellbench/internal/bench"
	"github.com/mchassin/bellbench/internal/ui"
)

// resultJSON is the machine-readable shape of one strategy's result.
// Durations are reported as real seconds, matching the tool's external
// surface.
type resultJSON struct {
	Name        string    `json:"name"`
	Algorithm   string    `json:"algorithm"`
	N           int       `json:"n"`
	Beta        float64   `json:"beta"`
	RunsSeconds []float64 `json:"runs_seconds"`
	MinSeconds  float64   `json:"min_seconds"`
	MeanSeconds float64   `json:"mean_seconds"`
	MaxSeconds  float64   `json:"max_seconds"`
}

// PrintResults renders benchmark results to w, either as an indented JSON
// array or as a themed comparison table.
func PrintResults(w io.Writer, results []bench.Result, jsonMode bool) error {
	if jsonMode {
		out := make([]resultJSON, 0, len(results))
		for _, res := range results {
			runs := make([]float64, 0, len(res.Runs))
			for _, m := range res.Runs {
				runs = append(runs, m.Seconds())
			}
			out = append(out, resultJSON{
				Name:        res.Name,
				Algorithm:   res.Algorithm,
				N:           res.N,
				Beta:        res.Beta,
				RunsSeconds: runs,
				MinSeconds:  res.Min.Seconds(),
				MeanSeconds: res.Mean.Seconds(),
				MaxSeconds:  res.Max.Seconds(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := ui.GetCurrentTheme()
	if len(results) > 0 {
		fmt.Fprintf(w, "%sValue update Vmat[i,j] = e[i,j] + beta*V[j]%s  (N=%d, beta=%g, %d runs)\n\n",
			t.Bold, t.Reset, results[0].N, results[0].Beta, len(results[0].Runs))
	}
	return bench.WriteTable(w, results)
}
