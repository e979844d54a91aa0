package analytics

import (
	"testing"

	"rupeerise/internal/core"
)

func TestProject(t *testing.T) {
	money := func(paise int64) core.Money { return core.Money{Paise: paise} }

	t.Run("converts savings into independent equivalents", func(t *testing.T) {
		items := []SkippedItem{
			{Name: "Starbucks Latte", Cost: money(35000), Quantity: 2},
			{Name: "Movie Ticket", Cost: money(30000), Quantity: 1},
		}

		got := Project(items, money(25000), money(800000), money(6000))
		if got.TotalSavings.Paise != 100000 {
			t.Fatalf("TotalSavings = %d, want 100000", got.TotalSavings.Paise)
		}
		if got.ExtraDays != 4 {
			t.Errorf("ExtraDays = %d, want 4 (100000/25000)", got.ExtraDays)
		}
		if got.ExtraRentDays != 3 {
			t.Errorf("ExtraRentDays = %d, want 3 (100000/26666)", got.ExtraRentDays)
		}
		if got.ExtraMeals != 16 {
			t.Errorf("ExtraMeals = %d, want 16 (100000/6000)", got.ExtraMeals)
		}
	})

	t.Run("zero denominators substitute zero", func(t *testing.T) {
		items := []SkippedItem{{Name: "Zomato Order", Cost: money(25000), Quantity: 1}}

		got := Project(items, money(0), money(0), money(0))
		if got.TotalSavings.Paise != 25000 {
			t.Errorf("TotalSavings = %d, want 25000", got.TotalSavings.Paise)
		}
		if got.ExtraDays != 0 || got.ExtraRentDays != 0 || got.ExtraMeals != 0 {
			t.Errorf("equivalents = %d/%d/%d, want all zero", got.ExtraDays, got.ExtraRentDays, got.ExtraMeals)
		}
	})

	t.Run("non-positive quantities are skipped", func(t *testing.T) {
		items := []SkippedItem{
			{Name: "Uber Ride", Cost: money(15000), Quantity: 0},
			{Name: "Uber Ride", Cost: money(15000), Quantity: -3},
			{Name: "Uber Ride", Cost: money(15000), Quantity: 1},
		}

		got := Project(items, money(5000), DefaultMonthlyRent, money(6000))
		if got.TotalSavings.Paise != 15000 {
			t.Errorf("TotalSavings = %d, want 15000", got.TotalSavings.Paise)
		}
	})

	t.Run("no items yields a zero projection", func(t *testing.T) {
		got := Project(nil, money(25000), DefaultMonthlyRent, money(6000))
		if got != (WhatIfProjection{}) {
			t.Errorf("Project(nil) = %+v, want zero value", got)
		}
	})
}

func TestPresetItems(t *testing.T) {
	presets := PresetItems()
	if len(presets) == 0 {
		t.Fatal("no preset items")
	}
	for _, it := range presets {
		if it.Name == "" || it.Cost.Paise <= 0 || it.Quantity != 1 {
			t.Errorf("malformed preset %+v", it)
		}
	}
}
