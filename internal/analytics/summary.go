// Package analytics derives every display-ready structure from a raw
// ledger snapshot: budget summaries, time-series windows, streaks, the
// expense heatmap, what-if projections, insights, and alerts.
//
// Everything in this package is a pure function over immutable inputs.
// It performs no I/O, holds no state, and is safe to call repeatedly
// with the same snapshot.
package analytics

import (
	"time"

	"rupeerise/internal/core"
)

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// DeriveCategorySpend overlays each budget's Spent field with the sum of
// expense transactions in the calendar month of refMonth whose category
// matches the budget name exactly (case-sensitive). Transactions whose
// category matches no budget are dropped silently and count toward
// nothing; callers must keep transaction categories aligned with the
// active budget set.
func DeriveCategorySpend(txs []core.Transaction, budgets []core.BudgetCategory, refMonth time.Time) []core.BudgetCategory {
	spent := make(map[string]int64, len(budgets))
	for _, tx := range txs {
		if tx.Type != core.Expense || !sameMonth(tx.Date, refMonth) {
			continue
		}
		spent[tx.Category] += tx.Amount.Paise
	}

	out := make([]core.BudgetCategory, len(budgets))
	for i, b := range budgets {
		b.Spent = core.Money{Paise: spent[b.Name]}
		out[i] = b
	}
	return out
}

// MonthlyIncome sums income transactions in the calendar month of ref.
func MonthlyIncome(txs []core.Transaction, ref time.Time) core.Money {
	var total int64
	for _, tx := range txs {
		if tx.Type == core.Income && sameMonth(tx.Date, ref) {
			total += tx.Amount.Paise
		}
	}
	return core.Money{Paise: total}
}

// DaysUntilAllowance returns ceil(next − now) in days, floored at zero.
// A zero next date falls back to the days remaining in the current
// calendar month (inclusive ceiling).
func DaysUntilAllowance(next, now time.Time) int {
	if next.IsZero() {
		y, m, _ := now.Date()
		endOfMonth := time.Date(y, m+1, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		return ceilDays(endOfMonth.Sub(now))
	}
	d := ceilDays(next.Sub(now))
	if d < 0 {
		return 0
	}
	return d
}

func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}

// DailyBurnRate is remaining/days. When no days remain, the whole
// remaining amount is the single-day rate. A negative remaining yields a
// negative rate, which signals over-budget and must be rendered
// distinctly from zero.
func DailyBurnRate(remaining core.Money, days int) core.Money {
	if days <= 0 {
		return remaining
	}
	return core.Money{Paise: remaining.Paise / int64(days)}
}

// ComputeSummary builds the budget snapshot for the month containing
// now. Categories are expected to carry derived Spent values (see
// DeriveCategorySpend). Pure; degrades to zeros on empty inputs.
func ComputeSummary(cats []core.BudgetCategory, txs []core.Transaction, profile core.UserProfile, now time.Time) core.BudgetSummary {
	var totalBudget, totalSpent int64
	for _, c := range cats {
		totalBudget += c.LimitAmount.Paise
		totalSpent += c.Spent.Paise
	}

	remaining := core.Money{Paise: totalBudget - totalSpent}
	days := DaysUntilAllowance(profile.NextAllowanceDate, now)

	return core.BudgetSummary{
		TotalBudget:        core.Money{Paise: totalBudget},
		TotalSpent:         core.Money{Paise: totalSpent},
		TotalIncome:        MonthlyIncome(txs, now),
		Remaining:          remaining,
		DailyBurnRate:      DailyBurnRate(remaining, days),
		DaysUntilAllowance: days,
	}
}
