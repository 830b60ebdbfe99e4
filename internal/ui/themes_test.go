package ui

import (
	"os"
	"testing"
)

// TestSetTheme verifies that SetTheme switches between themes by name.
func TestSetTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	defer SetCurrentTheme(originalTheme)

	testCases := []struct {
		name      string
		themeName string
		want      string
	}{
		{"dark", "dark", "dark"},
		{"light", "light", "light"},
		{"none", "none", "none"},
		{"unknown falls back to dark", "solarized", "dark"},
		{"empty falls back to dark", "", "dark"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetTheme(tc.themeName)
			if got := GetCurrentTheme().Name; got != tc.want {
				t.Errorf("SetTheme(%q): got theme %q, want %q", tc.themeName, got, tc.want)
			}
		})
	}
}

// TestInitTheme verifies the noColor flag and NO_COLOR environment handling.
func TestInitTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	originalNoColor, hadNoColor := os.LookupEnv("NO_COLOR")
	defer func() {
		SetCurrentTheme(originalTheme)
		if hadNoColor {
			os.Setenv("NO_COLOR", originalNoColor)
		} else {
			os.Unsetenv("NO_COLOR")
		}
	}()

	t.Run("flag true disables colors", func(t *testing.T) {
		os.Unsetenv("NO_COLOR")
		InitTheme(true)
		if got := GetCurrentTheme(); got.Name != "none" || got.Primary != "" {
			t.Errorf("InitTheme(true): got %+v, want none theme", got)
		}
	})

	t.Run("flag false uses dark theme", func(t *testing.T) {
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("InitTheme(false): got theme %q, want dark", got)
		}
	})

	t.Run("NO_COLOR set disables colors", func(t *testing.T) {
		os.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("with NO_COLOR=1: got theme %q, want none", got)
		}
	})

	t.Run("NO_COLOR empty value still disables colors", func(t *testing.T) {
		os.Setenv("NO_COLOR", "")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("with NO_COLOR='': got theme %q, want none", got)
		}
	})
}

// TestThemeColors verifies the color themes define their codes.
func TestThemeColors(t *testing.T) {
	for _, theme := range []Theme{DarkTheme, LightTheme} {
		if theme.Primary == "" || theme.Success == "" || theme.Error == "" || theme.Reset == "" {
			t.Errorf("%s theme has empty color codes: %+v", theme.Name, theme)
		}
	}
	if NoColorTheme.Primary != "" || NoColorTheme.Reset != "" {
		t.Errorf("none theme must be colorless: %+v", NoColorTheme)
	}
}
