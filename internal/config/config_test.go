package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchassin/bellbench/internal/bellman"
)

func TestParseConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := ParseConfig(nil, &buf)
	require.NoError(t, err)

	assert.Equal(t, bellman.DefaultGridSize, cfg.N)
	assert.Equal(t, bellman.DefaultBeta, cfg.Beta)
	assert.Equal(t, "all", cfg.Algo)
	assert.Equal(t, DefaultRepeats, cfg.Repeats)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMaxN, cfg.MaxN)
	assert.False(t, cfg.Server)
	assert.False(t, cfg.JSON)
}

func TestParseConfigFlags(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := ParseConfig([]string{
		"-n", "512",
		"-beta", "0.5",
		"-algo", "naive,compiled",
		"-repeats", "7",
		"-workers", "2",
		"-timeout", "30s",
		"-chart", "out.html",
		"-json",
		"-quiet",
	}, &buf)
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.N)
	assert.Equal(t, 0.5, cfg.Beta)
	assert.Equal(t, "naive,compiled", cfg.Algo)
	assert.Equal(t, 7, cfg.Repeats)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "out.html", cfg.Chart)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Quiet)
}

func TestParseConfigEnvironmentVariables(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "999")
	t.Setenv(EnvPrefix+"BETA", "0.8")
	t.Setenv(EnvPrefix+"ALGO", "vectorized")
	t.Setenv(EnvPrefix+"REPEATS", "5")
	t.Setenv(EnvPrefix+"TIMEOUT", "10m")
	t.Setenv(EnvPrefix+"SERVER", "true")
	t.Setenv(EnvPrefix+"PORT", "9999")
	t.Setenv(EnvPrefix+"JSON", "1")
	t.Setenv(EnvPrefix+"VERBOSE", "yes")
	t.Setenv(EnvPrefix+"QUIET", "0")

	var buf bytes.Buffer
	cfg, err := ParseConfig(nil, &buf)
	require.NoError(t, err)

	assert.Equal(t, 999, cfg.N)
	assert.Equal(t, 0.8, cfg.Beta)
	assert.Equal(t, "vectorized", cfg.Algo)
	assert.Equal(t, 5, cfg.Repeats)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
	assert.True(t, cfg.Server)
	assert.Equal(t, 9999, cfg.Port)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "111")

	var buf bytes.Buffer
	cfg, err := ParseConfig([]string{"-n", "222"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 222, cfg.N)
}

func TestParseConfigMalformedEnvIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "not-a-number")
	t.Setenv(EnvPrefix+"TIMEOUT", "eleven")

	var buf bytes.Buffer
	cfg, err := ParseConfig(nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, bellman.DefaultGridSize, cfg.N)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	t.Run("repeats below 1", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := ParseConfig([]string{"-repeats", "0"}, &buf)
		assert.ErrorContains(t, err, "repeats")
	})

	t.Run("port out of range", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := ParseConfig([]string{"-port", "70000"}, &buf)
		assert.ErrorContains(t, err, "port")
	})
}

func TestToUpdateOptions(t *testing.T) {
	cfg := AppConfig{Workers: 4}
	opts := cfg.ToUpdateOptions()
	assert.Equal(t, 4, opts.Workers)
}

func TestAlgos(t *testing.T) {
	registered := []string{"compiled", "naive", "parallel", "vectorized"}

	t.Run("all expands to registered", func(t *testing.T) {
		cfg := AppConfig{Algo: "all"}
		assert.Equal(t, registered, cfg.Algos(registered))
	})

	t.Run("empty expands to registered", func(t *testing.T) {
		cfg := AppConfig{}
		assert.Equal(t, registered, cfg.Algos(registered))
	})

	t.Run("comma list is split and trimmed", func(t *testing.T) {
		cfg := AppConfig{Algo: "naive, compiled ,"}
		assert.Equal(t, []string{"naive", "compiled"}, cfg.Algos(registered))
	})
}

func TestUsageOutput(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig([]string{"-h"}, &buf)
	require.Error(t, err) // flag.ErrHelp

	out := buf.String()
	assert.True(t, strings.Contains(out, "bellbench"))
	assert.True(t, strings.Contains(out, "-beta"))
}
