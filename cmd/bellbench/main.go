// Command bellbench benchmarks the value-update kernel
// Vmat[i,j] = e[i,j] + beta*V[j] across interchangeable update strategies
// and reports wall-clock timings, either on the terminal or over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mchassin/bellbench/internal/app"
	"github.com/mchassin/bellbench/internal/bellman"
	"github.com/mchassin/bellbench/internal/bench"
	"github.com/mchassin/bellbench/internal/cli"
	"github.com/mchassin/bellbench/internal/config"
	"github.com/mchassin/bellbench/internal/logging"
	"github.com/mchassin/bellbench/internal/server"
	"github.com/mchassin/bellbench/internal/service"
	"github.com/mchassin/bellbench/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseConfig(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	ui.InitTheme(cfg.NoColor)
	configureLogLevel(cfg)
	logger := logging.NewDefaultLogger()

	ctx, stop := app.SetupLifecycle(context.Background())
	defer stop()
	ctx, cancel := app.SetupContext(ctx, cfg.Timeout)
	defer cancel()

	if cfg.Server {
		return runServer(cfg, logger)
	}
	return runBench(ctx, cfg, logger)
}

// configureLogLevel maps the verbosity flags onto the zerolog global level.
func configureLogLevel(cfg config.AppConfig) {
	switch {
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runBench executes a one-shot comparison of the selected strategies and
// prints the results.
func runBench(ctx context.Context, cfg config.AppConfig, logger logging.Logger) int {
	factory := bellman.GlobalFactory()
	names := cfg.Algos(factory.List())

	runner := bench.NewRunner(factory, cfg.Repeats)
	runner.Options = cfg.ToUpdateOptions()

	// The spinner writes to the terminal; keep it off for scripted output.
	var spin *cli.SpinnerObserver
	if !cfg.Quiet && !cfg.JSON {
		spin = cli.NewSpinnerObserver(len(names), "benchmarking")
		subject := bellman.NewProgressSubject()
		subject.Register(spin)
		runner.Progress = subject
		spin.Start()
	}

	results, err := runner.Run(ctx, names, cfg.N, cfg.Beta)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		logger.Error("benchmark failed", err,
			logging.String("algo", cfg.Algo),
			logging.Int("n", cfg.N))
		return 1
	}

	if err := cli.PrintResults(os.Stdout, results, cfg.JSON); err != nil {
		logger.Error("failed to print results", err)
		return 1
	}

	if cfg.Chart != "" {
		if err := bench.RenderChartFile(cfg.Chart, results); err != nil {
			logger.Error("failed to write chart", err, logging.String("path", cfg.Chart))
			return 1
		}
		logger.Info("chart written", logging.String("path", cfg.Chart))
	}

	return 0
}

// runServer starts the HTTP API and blocks until shutdown.
func runServer(cfg config.AppConfig, logger logging.Logger) int {
	svc := service.NewBenchmarkService(bellman.GlobalFactory(), cfg.ToUpdateOptions(), cfg.MaxN)
	srv := server.NewServer(svc, cfg, logger)

	if err := srv.Start(); err != nil {
		logger.Error("server terminated", err)
		return 1
	}
	return 0
}
