// Command generate-golden regenerates the reference checksums used by the
// update-strategy golden tests. It runs the per-element reference loop over
// deterministically filled grids and records full-precision float64 values.
// The output is committed under internal/bellman/testdata; rerun this after
// any deliberate change to the kernel or the fill.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mchassin/bellbench/internal/bellman"
)

// GoldenCase is a single entry in the golden file. Float values are stored
// as hexadecimal float64 literals to survive JSON round-trips bit-exactly.
type GoldenCase struct {
	N     int     `json:"n"`
	Beta  float64 `json:"beta"`
	Sum   string  `json:"sum"`
	First string  `json:"first"`
	Last  string  `json:"last"`
}

func main() {
	outputDir := flag.String("out", "internal/bellman/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "update_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Cover the empty grid, tiny grids where every element matters, sizes
	// around the parallel cutover, and one moderately large grid.
	cases := []struct {
		n    int
		beta float64
	}{
		{0, 0.96},
		{1, 0.96},
		{2, 0.5},
		{3, 0.96},
		{7, 0.99},
		{16, 0.96},
		{64, 0.96},
		{255, 0.9},
		{256, 0.9},
		{300, 0.96},
	}

	factory := bellman.GlobalFactory()
	naive, err := factory.Get("naive")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving reference strategy: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var data []GoldenCase

	fmt.Println("Generating golden data...")

	for _, c := range cases {
		g, err := bellman.NewGrid(c.n, c.beta)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building grid N=%d: %v\n", c.n, err)
			os.Exit(1)
		}
		g.Fill()

		if err := naive.Update(ctx, nil, 0, g, bellman.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating grid N=%d: %v\n", c.n, err)
			os.Exit(1)
		}

		data = append(data, GoldenCase{
			N:     c.n,
			Beta:  c.beta,
			Sum:   hexFloat(checksum(g.Vmat)),
			First: hexFloat(firstElem(g.Vmat)),
			Last:  hexFloat(lastElem(g.Vmat)),
		})
		fmt.Printf("Generated N=%d beta=%g\n", c.n, c.beta)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing golden file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d cases)\n", filename, len(data))
}

// checksum sums the buffer left to right. The order matters: the golden test
// reproduces exactly this summation.
func checksum(vs []float64) float64 {
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total
}

func firstElem(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return vs[0]
}

func lastElem(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return vs[len(vs)-1]
}

func hexFloat(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}
