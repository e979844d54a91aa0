package core

import "testing"

func TestParseDecimalToPaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1234, true},
		{"12.346", 1235, true},
		{"250", 25000, true},
		{".5", 50, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToPaise(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDecimalToPaise(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseDecimalToPaise(%q) expected error", tc.in)
		}
		if got != tc.want {
			t.Fatalf("ParseDecimalToPaise(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyRupees(t *testing.T) {
	if got := (Money{Paise: 1234}).Rupees(); got != 12.34 {
		t.Fatalf("Rupees() = %v, want 12.34", got)
	}
}
