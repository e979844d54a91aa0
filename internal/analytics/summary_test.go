package analytics

import (
	"testing"
	"time"

	"rupeerise/internal/core"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveCategorySpend(t *testing.T) {
	now := date(2026, time.August, 15)
	budgets := []core.BudgetCategory{
		{Name: "Food & Dining", LimitAmount: core.Money{Paise: 500000}},
		{Name: "Transport", LimitAmount: core.Money{Paise: 200000}},
	}

	t.Run("sums expenses per matching category", func(t *testing.T) {
		txs := []core.Transaction{
			{Type: core.Expense, Category: "Food & Dining", Amount: core.Money{Paise: 15000}, Date: date(2026, time.August, 3)},
			{Type: core.Expense, Category: "Food & Dining", Amount: core.Money{Paise: 25000}, Date: date(2026, time.August, 9)},
			{Type: core.Expense, Category: "Transport", Amount: core.Money{Paise: 5000}, Date: date(2026, time.August, 9)},
		}

		got := DeriveCategorySpend(txs, budgets, now)
		if got[0].Spent.Paise != 40000 {
			t.Errorf("Food & Dining spent = %d, want 40000", got[0].Spent.Paise)
		}
		if got[1].Spent.Paise != 5000 {
			t.Errorf("Transport spent = %d, want 5000", got[1].Spent.Paise)
		}
	})

	t.Run("ignores income and other months", func(t *testing.T) {
		txs := []core.Transaction{
			{Type: core.Income, Category: "Food & Dining", Amount: core.Money{Paise: 100000}, Date: date(2026, time.August, 1)},
			{Type: core.Expense, Category: "Food & Dining", Amount: core.Money{Paise: 30000}, Date: date(2026, time.July, 31)},
		}

		got := DeriveCategorySpend(txs, budgets, now)
		if got[0].Spent.Paise != 0 {
			t.Errorf("spent = %d, want 0", got[0].Spent.Paise)
		}
	})

	t.Run("unmatched categories are dropped silently", func(t *testing.T) {
		txs := []core.Transaction{
			{Type: core.Expense, Category: "Groceries", Amount: core.Money{Paise: 70000}, Date: date(2026, time.August, 5)},
			{Type: core.Expense, Category: "food & dining", Amount: core.Money{Paise: 70000}, Date: date(2026, time.August, 5)},
		}

		got := DeriveCategorySpend(txs, budgets, now)
		for _, c := range got {
			if c.Spent.Paise != 0 {
				t.Errorf("%s spent = %d, want 0 (unmatched categories must count toward nothing)", c.Name, c.Spent.Paise)
			}
		}
	})

	t.Run("does not mutate input budgets", func(t *testing.T) {
		txs := []core.Transaction{
			{Type: core.Expense, Category: "Transport", Amount: core.Money{Paise: 9000}, Date: date(2026, time.August, 2)},
		}

		DeriveCategorySpend(txs, budgets, now)
		if budgets[1].Spent.Paise != 0 {
			t.Errorf("input budget mutated: spent = %d", budgets[1].Spent.Paise)
		}
	})
}

func TestDaysUntilAllowance(t *testing.T) {
	tests := []struct {
		name string
		next time.Time
		now  time.Time
		want int
	}{
		{"future date", date(2026, time.September, 1), date(2026, time.August, 22), 10},
		{"same day", date(2026, time.August, 22), date(2026, time.August, 22), 0},
		{"past date floors at zero", date(2026, time.August, 1), date(2026, time.August, 22), 0},
		{"partial day rounds up", date(2026, time.September, 1), time.Date(2026, time.August, 31, 18, 0, 0, 0, time.UTC), 1},
		{"zero date falls back to month end", time.Time{}, date(2026, time.August, 22), 9},
		{"zero date on last day", time.Time{}, date(2026, time.August, 31), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntilAllowance(tt.next, tt.now); got != tt.want {
				t.Errorf("DaysUntilAllowance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyBurnRate(t *testing.T) {
	tests := []struct {
		name      string
		remaining int64
		days      int
		want      int64
	}{
		{"even split", 100000, 10, 10000},
		{"integer division floors", 100000, 3, 33333},
		{"zero days returns remaining", 50000, 0, 50000},
		{"negative days returns remaining", 50000, -2, 50000},
		{"negative remaining stays negative", -30000, 3, -10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyBurnRate(core.Money{Paise: tt.remaining}, tt.days)
			if got.Paise != tt.want {
				t.Errorf("DailyBurnRate() = %d, want %d", got.Paise, tt.want)
			}
		})
	}
}

func TestComputeSummary(t *testing.T) {
	now := date(2026, time.August, 22)
	cats := []core.BudgetCategory{
		{Name: "Food & Dining", LimitAmount: core.Money{Paise: 500000}, Spent: core.Money{Paise: 320000}},
		{Name: "Transport", LimitAmount: core.Money{Paise: 200000}, Spent: core.Money{Paise: 80000}},
	}
	txs := []core.Transaction{
		{Type: core.Income, Category: "Allowance", Amount: core.Money{Paise: 1500000}, Date: date(2026, time.August, 1)},
		{Type: core.Income, Category: "Allowance", Amount: core.Money{Paise: 200000}, Date: date(2026, time.July, 1)},
	}
	profile := core.UserProfile{NextAllowanceDate: date(2026, time.September, 1)}

	sum := ComputeSummary(cats, txs, profile, now)

	if sum.TotalBudget.Paise != 700000 {
		t.Errorf("TotalBudget = %d, want 700000", sum.TotalBudget.Paise)
	}
	if sum.TotalSpent.Paise != 400000 {
		t.Errorf("TotalSpent = %d, want 400000", sum.TotalSpent.Paise)
	}
	if sum.TotalIncome.Paise != 1500000 {
		t.Errorf("TotalIncome = %d, want 1500000 (July income must not count)", sum.TotalIncome.Paise)
	}
	if sum.Remaining.Paise != 300000 {
		t.Errorf("Remaining = %d, want 300000", sum.Remaining.Paise)
	}
	if sum.DaysUntilAllowance != 10 {
		t.Errorf("DaysUntilAllowance = %d, want 10", sum.DaysUntilAllowance)
	}
	if sum.DailyBurnRate.Paise != 30000 {
		t.Errorf("DailyBurnRate = %d, want 30000", sum.DailyBurnRate.Paise)
	}

	// Recomputing from the same snapshot must give identical results.
	again := ComputeSummary(cats, txs, profile, now)
	if again != sum {
		t.Errorf("ComputeSummary is not idempotent: %+v vs %+v", again, sum)
	}
}

func TestComputeSummaryEmptyInputs(t *testing.T) {
	sum := ComputeSummary(nil, nil, core.UserProfile{}, date(2026, time.August, 31))
	if sum.TotalBudget.Paise != 0 || sum.TotalSpent.Paise != 0 || sum.Remaining.Paise != 0 {
		t.Errorf("empty inputs must yield zero summary, got %+v", sum)
	}
}
