package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	mk := func(name string, min, mean, max time.Duration) Result {
		return Result{
			Name:      name,
			Algorithm: name + " strategy",
			N:         100,
			Beta:      0.96,
			Runs: []Measurement{
				{Run: 0, Elapsed: max},
				{Run: 1, Elapsed: min},
			},
			Min:  min,
			Mean: mean,
			Max:  max,
		}
	}
	return []Result{
		mk("naive", 40*time.Millisecond, 45*time.Millisecond, 50*time.Millisecond),
		mk("compiled", 10*time.Millisecond, 11*time.Millisecond, 12*time.Millisecond),
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "naive")
	assert.Contains(t, out, "compiled")
	assert.Contains(t, out, "<- fastest")

	// The fastest marker belongs to the compiled row
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "<- fastest") {
			assert.Contains(t, line, "compiled")
		}
	}
}

func TestWriteTableEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.Contains(t, buf.String(), "no results")
}

func TestRenderChart(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "Value-update strategy comparison")
	assert.Contains(t, out, "naive")
}

func TestRenderChartEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.Error(t, RenderChart(&buf, nil))
}

func TestRenderChartFile(t *testing.T) {
	t.Parallel()
	path := t.TempDir() + "/chart.html"
	require.NoError(t, RenderChartFile(path, sampleResults()))
}
