package core

import "testing"

func TestParseWon(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"9000", 9000, true},
		{"9,000", 9000, true},
		{"1,234,567", 1234567, true},
		{"9000.4", 9000, true}, // half-up rounding
		{"9000.5", 9001, true},
		{" 12000 ", 12000, true},
		{"0", 0, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseWon(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestFormatWon(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "₩0"},
		{900, "₩900"},
		{9000, "₩9,000"},
		{123456, "₩123,456"},
		{1234567, "₩1,234,567"},
		{-9000, "-₩9,000"},
	}
	for _, tc := range cases {
		if got := FormatWon(tc.in); got != tc.out {
			t.Fatalf("%d expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
