package page

import (
	"testing"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"01:02:03", "1h 2m", true},
		{"45:30", "45m", true},
		{"90", "1m", true},
		{"5400", "1h 30m", true},
		{"3600", "1h 0m", true},
		{"00:22:15", "22m", true},
		{"0:00", "0m", true},
		{"59", "0m", true},
		{"not-a-number", "", false},
		{"1:2:3:4", "", false},
		{"one:two", "", false},
		{"12:xx", "", false},
		{"1:02:xx", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		result, ok := FormatDuration(tc.raw)
		if ok != tc.ok {
			t.Errorf("FormatDuration(%q): expected ok=%t, got %t", tc.raw, tc.ok, ok)
			continue
		}
		if result != tc.expected {
			t.Errorf("FormatDuration(%q): expected %q, got %q", tc.raw, tc.expected, result)
		}
	}
}

func TestFormatDurationDropsSeconds(t *testing.T) {
	// Seconds are validated but never displayed
	result, ok := FormatDuration("02:45:59")
	if !ok {
		t.Fatal("Expected valid duration")
	}
	if result != "2h 45m" {
		t.Errorf("Expected '2h 45m', got %q", result)
	}
}
