package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mchassin/bellbench/internal/bench"
	"github.com/mchassin/bellbench/internal/testutil"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{
			Name:      "naive",
			Algorithm: "Naive Loop (O(N²), per-element)",
			N:         100,
			Beta:      0.96,
			Runs: []bench.Measurement{
				{Run: 0, Elapsed: 30 * time.Millisecond},
				{Run: 1, Elapsed: 20 * time.Millisecond},
			},
			Min:  20 * time.Millisecond,
			Mean: 25 * time.Millisecond,
			Max:  30 * time.Millisecond,
		},
	}
}

func TestPrintResultsTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintResults(&buf, sampleResults(), false); err != nil {
		t.Fatalf("PrintResults: %v", err)
	}

	out := testutil.StripAnsiCodes(buf.String())
	for _, want := range []string{"naive", "N=100", "beta=0.96", "STRATEGY"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintResultsJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintResults(&buf, sampleResults(), true); err != nil {
		t.Fatalf("PrintResults: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 result, got %d", len(decoded))
	}
	if decoded[0]["name"] != "naive" {
		t.Errorf("name = %v", decoded[0]["name"])
	}
	if decoded[0]["min_seconds"].(float64) <= 0 {
		t.Errorf("min_seconds = %v", decoded[0]["min_seconds"])
	}
	runs, ok := decoded[0]["runs_seconds"].([]any)
	if !ok || len(runs) != 2 {
		t.Errorf("runs_seconds = %v", decoded[0]["runs_seconds"])
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	p := NewProgressState(2)

	p.Update(0, 0.5)
	p.Update(1, 1.0)
	if avg := p.CalculateAverage(); avg != 0.75 {
		t.Errorf("average = %v, want 0.75", avg)
	}

	// Regressions and bad indices are ignored
	p.Update(0, 0.1)
	p.Update(5, 1.0)
	p.Update(-1, 1.0)
	if avg := p.CalculateAverage(); avg != 0.75 {
		t.Errorf("average after noise = %v, want 0.75", avg)
	}
}

func TestSpinnerObserver(t *testing.T) {
	t.Parallel()
	o := NewSpinnerObserver(1, "running")
	o.Update(0, 0.5)
	if !strings.Contains(o.spinner.Suffix, "50%") {
		t.Errorf("suffix = %q, want 50%%", o.spinner.Suffix)
	}
	o.SetLabel("naive")
	if !strings.Contains(o.spinner.Suffix, "naive") {
		t.Errorf("suffix = %q after SetLabel", o.spinner.Suffix)
	}
}
