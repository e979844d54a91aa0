package core

import (
	"testing"
	"time"
)

func TestFormatIndianNumber(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{25000, "₹250.00"},
		{123456, "₹1,234.56"},
		{15000000, "₹1,50,000.00"},
		{1234567800, "₹1,23,45,678.00"},
		{-150000, "-₹1,500.00"},
		{99, "₹0.99"},
	}
	for _, tc := range cases {
		if got := FormatIndianNumber(Money{Paise: tc.paise}); got != tc.want {
			t.Fatalf("FormatIndianNumber(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}

func TestFormatLakhsCrores(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{1500000000, "₹1.50 Cr"}, // 1.5 crore rupees
		{15000000, "₹1.50 L"},    // 1.5 lakh rupees
		{150000, "₹1.50K"},
		{25000, "₹250.00"},
		{-15000000, "-₹1.50 L"},
	}
	for _, tc := range cases {
		if got := FormatLakhsCrores(Money{Paise: tc.paise}); got != tc.want {
			t.Fatalf("FormatLakhsCrores(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatIndianDate(d); got != "05/02/2026" {
		t.Fatalf("FormatIndianDate = %q", got)
	}
	if got := FormatShortIndianDate(d); got != "5 Feb" {
		t.Fatalf("FormatShortIndianDate = %q", got)
	}
}

func TestStreetFoodPriceFallback(t *testing.T) {
	if got := StreetFoodPrice("Mumbai"); got.Paise != 8000 {
		t.Fatalf("Mumbai price = %d, want 8000", got.Paise)
	}
	if got := StreetFoodPrice("Atlantis"); got.Paise != 6000 {
		t.Fatalf("unknown city price = %d, want default 6000", got.Paise)
	}
	if got := StreetFoodPrice(""); got.Paise != 6000 {
		t.Fatalf("empty city price = %d, want default 6000", got.Paise)
	}
}

func TestFestiveSeason(t *testing.T) {
	cases := []struct {
		month    time.Month
		festival string
		buffer   int
	}{
		{time.October, "Diwali", 30},
		{time.November, "Diwali", 30},
		{time.March, "Holi", 30},
		{time.August, "Ganesh Chaturthi", 20},
		{time.September, "Ganesh Chaturthi", 20},
		{time.January, "", 0},
		{time.June, "", 0},
	}
	for _, tc := range cases {
		info := FestiveSeason(time.Date(2026, tc.month, 15, 0, 0, 0, 0, time.UTC))
		if info.Festival != tc.festival || info.BufferPercent != tc.buffer {
			t.Fatalf("month %v: got %+v, want %s/%d%%", tc.month, info, tc.festival, tc.buffer)
		}
		if info.IsFestive != (tc.festival != "") {
			t.Fatalf("month %v: IsFestive mismatch", tc.month)
		}
	}
}
