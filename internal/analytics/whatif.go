package analytics

import "rupeerise/internal/core"

// DefaultMonthlyRent is the assumed PG/hostel rent used for the
// rent-days conversion, matching the default PG/Rent budget.
var DefaultMonthlyRent = core.Money{Paise: 800000}

// SkippedItem is one hypothetical purchase the user would give up.
type SkippedItem struct {
	Name     string
	Cost     core.Money
	Quantity int
}

// WhatIfProjection converts a saved amount into three independent unit
// equivalents. The conversions are never compounded.
type WhatIfProjection struct {
	TotalSavings  core.Money
	ExtraDays     int // of runway at the current burn rate
	ExtraRentDays int // of PG rent (monthly rent / 30)
	ExtraMeals    int // street-food meals at the city price
}

// Project computes the savings projection for a list of skipped items.
// All divisions guard against zero or negative denominators by
// substituting zero, never by failing.
func Project(items []SkippedItem, burnRate, monthlyRent, mealPrice core.Money) WhatIfProjection {
	var savings int64
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		savings += it.Cost.Paise * int64(it.Quantity)
	}

	p := WhatIfProjection{TotalSavings: core.Money{Paise: savings}}
	if burnRate.Paise > 0 {
		p.ExtraDays = int(savings / burnRate.Paise)
	}
	if rentDaily := monthlyRent.Paise / 30; rentDaily > 0 {
		p.ExtraRentDays = int(savings / rentDaily)
	}
	if mealPrice.Paise > 0 {
		p.ExtraMeals = int(savings / mealPrice.Paise)
	}
	return p
}

// PresetItems are the quick-add suggestions shown by the simulator.
func PresetItems() []SkippedItem {
	return []SkippedItem{
		{Name: "Starbucks Latte", Cost: core.Money{Paise: 35000}, Quantity: 1},
		{Name: "Zomato Order", Cost: core.Money{Paise: 25000}, Quantity: 1},
		{Name: "Movie Ticket", Cost: core.Money{Paise: 30000}, Quantity: 1},
		{Name: "Uber Ride", Cost: core.Money{Paise: 15000}, Quantity: 1},
		{Name: "Weekend Hangout", Cost: core.Money{Paise: 50000}, Quantity: 1},
	}
}
