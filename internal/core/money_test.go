package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"$4.50", 450, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"0", 0, true},         // zero is a valid amount
		{".5", 50, true},
		{"7", 700, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tc.in, err)
			}
			if got.Cents != tc.cents {
				t.Fatalf("ParseAmount(%q) = %d cents, want %d", tc.in, got.Cents, tc.cents)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := (Money{Cents: 450}).String(); got != "4.50" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Money{Cents: 0}).String(); got != "0.00" {
		t.Fatalf("String() = %q", got)
	}
}
