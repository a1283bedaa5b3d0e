package util

import "testing"

func TestFallback(t *testing.T) {
	cases := []struct {
		value string
		def   string
		want  string
	}{
		{"", "default", "default"},
		{"   ", "default", "default"},
		{"value", "default", "value"},
	}
	for _, tc := range cases {
		if got := Fallback(tc.value, tc.def); got != tc.want {
			t.Errorf("Fallback(%q, %q) = %q, want %q", tc.value, tc.def, got, tc.want)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		current, delta, length, want int
	}{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, 0, 3, 1},
		{5, 1, 0, 0},
	}
	for _, tc := range cases {
		if got := WrapIndex(tc.current, tc.delta, tc.length); got != tc.want {
			t.Errorf("WrapIndex(%d, %d, %d) = %d, want %d", tc.current, tc.delta, tc.length, got, tc.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[32mapplied\x1b[0m", "applied"},
		{"a\x1b[1;31mb\x1b[mc", "abc"},
		{"dangling\x1b[", "dangling\x1b["},
	}
	for _, tc := range cases {
		if got := StripANSI(tc.in); got != tc.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
