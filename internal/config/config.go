// Package config handles application configuration from command-line flags
// and environment variables. Flags take precedence over the environment,
// which takes precedence over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mchassin/bellbench/internal/bellman"
)

// EnvPrefix is the prefix for all environment variables read by bellbench.
const EnvPrefix = "BELLBENCH_"

// Default values for parameters not covered by bellman constants.
const (
	DefaultRepeats = 3
	DefaultTimeout = 10 * time.Minute
	DefaultPort    = 8080
	DefaultMaxN    = 20000
)

// AppConfig holds the full application configuration.
type AppConfig struct {
	// N is the grid dimension.
	N int
	// Beta is the discount factor. Passed through unvalidated; the kernel is
	// well-defined for any real scalar.
	Beta float64
	// Algo selects the strategy to run ("all" compares every registered one).
	Algo string
	// Repeats is the number of timed passes per strategy.
	Repeats int
	// Workers is the goroutine count for the parallel strategy (0 = GOMAXPROCS).
	Workers int
	// Timeout bounds the whole run (0 = no timeout).
	Timeout time.Duration
	// Chart, if non-empty, is the path of an HTML chart to write.
	Chart string
	// Server enables the HTTP API instead of a one-shot run.
	Server bool
	// Port is the HTTP API listen port.
	Port int
	// MaxN caps the grid dimension accepted by the HTTP API (0 = no cap).
	MaxN int
	// JSON switches CLI output to machine-readable JSON.
	JSON bool
	// Verbose enables debug logging.
	Verbose bool
	// Quiet suppresses all non-result output.
	Quiet bool
	// NoColor disables colored terminal output.
	NoColor bool
}

// ParseConfig builds an AppConfig from the given argument list (without the
// program name), applying environment overrides before flag parsing so that
// explicit flags always win.
//
// Parameters:
//   - args: The command-line arguments, typically os.Args[1:].
//   - output: Destination for usage and flag error text.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A flag parsing or validation error.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	defaults := AppConfig{
		N:       bellman.DefaultGridSize,
		Beta:    bellman.DefaultBeta,
		Algo:    "all",
		Repeats: DefaultRepeats,
		Timeout: DefaultTimeout,
		Port:    DefaultPort,
		MaxN:    DefaultMaxN,
	}
	applyEnv(&defaults)

	var cfg AppConfig
	fs := flag.NewFlagSet("bellbench", flag.ContinueOnError)
	fs.SetOutput(output)
	setCustomUsage(fs)

	fs.IntVar(&cfg.N, "n", defaults.N, "grid dimension `N` (V is N, e and Vmat are N×N)")
	fs.Float64Var(&cfg.Beta, "beta", defaults.Beta, "discount `factor` applied to V")
	fs.StringVar(&cfg.Algo, "algo", defaults.Algo, "`strategy` to run: naive, vectorized, compiled, parallel or all")
	fs.IntVar(&cfg.Repeats, "repeats", defaults.Repeats, "timed passes per strategy")
	fs.IntVar(&cfg.Workers, "workers", defaults.Workers, "goroutines for the parallel strategy (0 = GOMAXPROCS)")
	fs.DurationVar(&cfg.Timeout, "timeout", defaults.Timeout, "overall run `timeout` (0 = none)")
	fs.StringVar(&cfg.Chart, "chart", defaults.Chart, "write an HTML timing chart to `path`")
	fs.BoolVar(&cfg.Server, "server", defaults.Server, "serve the HTTP API instead of running once")
	fs.IntVar(&cfg.Port, "port", defaults.Port, "HTTP API listen `port`")
	fs.IntVar(&cfg.MaxN, "max-n", defaults.MaxN, "maximum N accepted by the HTTP API (0 = no cap)")
	fs.BoolVar(&cfg.JSON, "json", defaults.JSON, "emit results as JSON")
	fs.BoolVar(&cfg.Verbose, "verbose", defaults.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "quiet", defaults.Quiet, "suppress non-result output")
	fs.BoolVar(&cfg.NoColor, "no-color", defaults.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks fields that would make the run meaningless rather than
// merely slow. The kernel-level contracts (negative N, shape mismatches) are
// enforced downstream with their own errors.
func (c *AppConfig) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("config: repeats must be at least 1, got %d", c.Repeats)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port must be in [1, 65535], got %d", c.Port)
	}
	return nil
}

// ToUpdateOptions converts the configuration to kernel execution options.
func (c *AppConfig) ToUpdateOptions() bellman.Options {
	return bellman.Options{
		Workers: c.Workers,
	}
}

// Algos expands the Algo field to the list of strategy names to run.
func (c *AppConfig) Algos(registered []string) []string {
	if c.Algo == "" || c.Algo == "all" {
		return registered
	}
	parts := strings.Split(c.Algo, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// applyEnv overwrites defaults with values from the environment.
func applyEnv(cfg *AppConfig) {
	envInt(EnvPrefix+"N", &cfg.N)
	envFloat(EnvPrefix+"BETA", &cfg.Beta)
	envString(EnvPrefix+"ALGO", &cfg.Algo)
	envInt(EnvPrefix+"REPEATS", &cfg.Repeats)
	envInt(EnvPrefix+"WORKERS", &cfg.Workers)
	envDuration(EnvPrefix+"TIMEOUT", &cfg.Timeout)
	envString(EnvPrefix+"CHART", &cfg.Chart)
	envBool(EnvPrefix+"SERVER", &cfg.Server)
	envInt(EnvPrefix+"PORT", &cfg.Port)
	envInt(EnvPrefix+"MAX_N", &cfg.MaxN)
	envBool(EnvPrefix+"JSON", &cfg.JSON)
	envBool(EnvPrefix+"VERBOSE", &cfg.Verbose)
	envBool(EnvPrefix+"QUIET", &cfg.Quiet)
	envBool(EnvPrefix+"NO_COLOR", &cfg.NoColor)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func envBool(key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}
