package analytics

import (
	"testing"

	"rupeerise/internal/core"
)

func findAlert(events []AlertEvent, kind string) (AlertEvent, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return AlertEvent{}, false
}

func TestEvaluateAlerts(t *testing.T) {
	money := func(paise int64) core.Money { return core.Money{Paise: paise} }

	t.Run("category thresholds", func(t *testing.T) {
		cats := []core.BudgetCategory{
			{Name: "Food & Dining", LimitAmount: money(500000), Spent: money(520000)},
			{Name: "Transport", LimitAmount: money(200000), Spent: money(185000)},
			{Name: "Books & Supplies", LimitAmount: money(300000), Spent: money(150000)},
		}

		got := EvaluateAlerts(cats, core.BudgetSummary{})
		ex, ok := findAlert(got, "category_exceeded")
		if !ok {
			t.Fatal("category_exceeded missing")
		}
		if ex.Level != AlertError {
			t.Errorf("exceeded level = %s, want error", ex.Level)
		}
		near, ok := findAlert(got, "category_near_limit")
		if !ok {
			t.Fatal("category_near_limit missing")
		}
		if near.Level != AlertWarning {
			t.Errorf("near-limit level = %s, want warning", near.Level)
		}
	})

	t.Run("overall critical at 95 percent", func(t *testing.T) {
		sum := core.BudgetSummary{
			TotalBudget: money(1000000),
			TotalSpent:  money(950000),
		}

		got := EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "overall_critical"); !ok {
			t.Error("overall_critical missing at exactly 95%")
		}

		sum.TotalSpent = money(949999)
		got = EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "overall_critical"); ok {
			t.Error("overall_critical fired below 95%")
		}
	})

	t.Run("low burn rate warning", func(t *testing.T) {
		sum := core.BudgetSummary{
			DailyBurnRate:      money(9000),
			DaysUntilAllowance: 10,
		}

		got := EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "low_burn_rate"); !ok {
			t.Error("low_burn_rate missing for a tight budget")
		}

		// The warning only matters with enough days ahead.
		sum.DaysUntilAllowance = 2
		got = EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "low_burn_rate"); ok {
			t.Error("low_burn_rate fired with 2 days remaining")
		}

		// A negative rate signals over-budget, not tight.
		sum = core.BudgetSummary{DailyBurnRate: money(-5000), DaysUntilAllowance: 10}
		got = EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "low_burn_rate"); ok {
			t.Error("low_burn_rate fired with a negative rate")
		}
	})

	t.Run("on track encouragement", func(t *testing.T) {
		sum := core.BudgetSummary{
			TotalBudget:        money(1000000),
			TotalSpent:         money(400000),
			DaysUntilAllowance: 10,
		}

		got := EvaluateAlerts(nil, sum)
		ev, ok := findAlert(got, "on_track")
		if !ok {
			t.Fatal("on_track missing")
		}
		if ev.Level != AlertSuccess {
			t.Errorf("on_track level = %s, want success", ev.Level)
		}

		// Never congratulate an untouched budget.
		sum.TotalSpent = money(0)
		got = EvaluateAlerts(nil, sum)
		if _, ok := findAlert(got, "on_track"); ok {
			t.Error("on_track fired with zero spending")
		}
	})

	t.Run("empty snapshot yields no alerts", func(t *testing.T) {
		if got := EvaluateAlerts(nil, core.BudgetSummary{}); len(got) != 0 {
			t.Errorf("got %d alerts, want 0: %+v", len(got), got)
		}
	})
}
