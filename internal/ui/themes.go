// Package ui provides terminal color themes shared by the CLI surfaces.
package ui

import (
	"os"
	"sync"
)

// Theme groups the ANSI escape codes used for terminal output.
// An empty code renders as plain text, so NoColorTheme disables styling
// without any branching at the call sites.
type Theme struct {
	Name      string
	Reset     string
	Bold      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
}

var (
	// DarkTheme is the default theme, tuned for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Reset:     "\x1b[0m",
		Bold:      "\x1b[1m",
		Primary:   "\x1b[36m", // cyan
		Secondary: "\x1b[90m", // bright black
		Success:   "\x1b[32m", // green
		Warning:   "\x1b[33m", // yellow
		Error:     "\x1b[31m", // red
	}

	// LightTheme uses darker foreground colors for light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Reset:     "\x1b[0m",
		Bold:      "\x1b[1m",
		Primary:   "\x1b[34m", // blue
		Secondary: "\x1b[37m", // light gray
		Success:   "\x1b[32m",
		Warning:   "\x1b[35m", // magenta reads better on light backgrounds
		Error:     "\x1b[31m",
	}

	// NoColorTheme renders everything as plain text.
	NoColorTheme = Theme{Name: "none"}
)

var (
	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// SetTheme selects the active theme by name ("dark", "light", "none").
// Unknown names fall back to the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme initializes the active theme at startup.
// Colors are disabled when the noColor flag is set or when the NO_COLOR
// environment variable is present (any value, including empty, per the
// no-color.org convention).
func InitTheme(noColor bool) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
