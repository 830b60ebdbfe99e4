package testutil

import "testing"

func TestStripAnsiCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no codes",
			input:    "naive 12ms",
			expected: "naive 12ms",
		},
		{
			name:     "simple color",
			input:    "\x1b[31mslow\x1b[0m",
			expected: "slow",
		},
		{
			name:     "bold and color",
			input:    "\x1b[1;32mfastest\x1b[0m",
			expected: "fastest",
		},
		{
			name:     "multiple codes",
			input:    "plain \x1b[33myellow\x1b[0m \x1b[34mblue\x1b[0m",
			expected: "plain yellow blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripAnsiCodes(tt.input); got != tt.expected {
				t.Errorf("StripAnsiCodes(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
