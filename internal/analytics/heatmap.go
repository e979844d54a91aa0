package analytics

import (
	"time"

	"rupeerise/internal/core"
)

// IntensityBand classifies a day's spend-to-budget ratio.
type IntensityBand string

const (
	BandNone     IntensityBand = "none"     // no spending
	BandLow      IntensityBand = "low"      // (0, 0.5]
	BandModerate IntensityBand = "moderate" // (0.5, 0.8]
	BandHigh     IntensityBand = "high"     // (0.8, 1.0]
	BandOver     IntensityBand = "over"     // (1.0, 1.5]
	BandSevere   IntensityBand = "severe"   // (1.5, ∞)
)

// HeatmapDay is one cell of the calendar grid. Blank cells pad the
// first week so day 1 lands on its real weekday.
type HeatmapDay struct {
	Day   int
	Spent core.Money
	Band  IntensityBand
	Blank bool
}

type HeatmapStats struct {
	OverBudgetDays int
	ZeroSpendDays  int
	PeakDaySpend   core.Money
}

// Heatmap is the calendar-grid-ready expense view of one month.
type Heatmap struct {
	Year       int
	Month      time.Month
	MonthLabel string
	Days       []HeatmapDay
	Stats      HeatmapStats
}

// BuildHeatmap buckets the current month's expense transactions by day
// of month and classifies each day into an intensity band. The grid is
// padded with leading blank slots equal to the weekday index of day 1
// (0 = Sunday).
func BuildHeatmap(txs []core.Transaction, dailyBudget core.Money, now time.Time) Heatmap {
	year, month, _ := now.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	daily := make(map[int]int64)
	for _, tx := range txs {
		if tx.Type != core.Expense || !sameMonth(tx.Date, now) {
			continue
		}
		daily[tx.Date.Day()] += tx.Amount.Paise
	}

	days := make([]HeatmapDay, 0, daysInMonth+int(firstOfMonth.Weekday()))
	for i := 0; i < int(firstOfMonth.Weekday()); i++ {
		days = append(days, HeatmapDay{Blank: true})
	}

	stats := HeatmapStats{ZeroSpendDays: daysInMonth - len(daily)}
	for d := 1; d <= daysInMonth; d++ {
		spent := daily[d]
		days = append(days, HeatmapDay{
			Day:   d,
			Spent: core.Money{Paise: spent},
			Band:  classifyIntensity(spent, dailyBudget.Paise),
		})
		if spent > dailyBudget.Paise {
			stats.OverBudgetDays++
		}
		if spent > stats.PeakDaySpend.Paise {
			stats.PeakDaySpend = core.Money{Paise: spent}
		}
	}

	return Heatmap{
		Year:       year,
		Month:      month,
		MonthLabel: firstOfMonth.Format("January 2006"),
		Days:       days,
		Stats:      stats,
	}
}

func classifyIntensity(spent, budget int64) IntensityBand {
	if spent == 0 {
		return BandNone
	}
	if budget <= 0 {
		// Any spending against a non-positive budget is over.
		return BandSevere
	}
	ratio := float64(spent) / float64(budget)
	switch {
	case ratio <= 0.5:
		return BandLow
	case ratio <= 0.8:
		return BandModerate
	case ratio <= 1.0:
		return BandHigh
	case ratio <= 1.5:
		return BandOver
	}
	return BandSevere
}
