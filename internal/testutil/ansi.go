// Package testutil provides helpers shared by tests across packages.
package testutil

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsiCodes removes ANSI SGR escape sequences from s, so tests can
// assert on terminal output regardless of the active color theme.
func StripAnsiCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
