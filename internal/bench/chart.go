package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart writes an HTML bar chart of the minimum durations (in
// milliseconds) per strategy.
func RenderChart(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return fmt.Errorf("bench: no results to chart")
	}

	x := make([]string, 0, len(results))
	y := make([]opts.BarData, 0, len(results))
	for _, res := range results {
		x = append(x, res.Name)
		y = append(y, opts.BarData{Value: float64(res.Min.Microseconds()) / 1000.0})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Value-update strategy comparison",
			Subtitle: fmt.Sprintf("N=%d, beta=%g, best of %d runs (ms)", results[0].N, results[0].Beta, len(results[0].Runs)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("min duration (ms)", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}

// RenderChartFile renders the chart into the named file, creating or
// truncating it.
func RenderChartFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderChart(f, results); err != nil {
		return err
	}
	return f.Close()
}
