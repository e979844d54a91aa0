package core

import (
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		Description: "Biryani at Paradise",
		Amount:      Money{Paise: 25000},
		Category:    "Food & Dining",
		Type:        Expense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "a", Amount: Money{Paise: 1}, Category: "c", Type: Expense}, // zero date
		{Date: good.Date, Description: "", Amount: Money{Paise: 1}, Category: "c", Type: Expense},
		{Date: good.Date, Description: "a", Amount: Money{Paise: 0}, Category: "c", Type: Expense},
		{Date: good.Date, Description: "a", Amount: Money{Paise: 1}, Category: "", Type: Expense},
		{Date: good.Date, Description: "a", Amount: Money{Paise: 1}, Category: "c", Type: "transfer"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetCategorySpendRatio(t *testing.T) {
	cases := []struct {
		limit, spent int64
		want         float64
	}{
		{500000, 250000, 0.5},
		{500000, 500000, 1.0},
		{500000, 750000, 1.5},
		{0, 100, 0},
	}
	for i, tc := range cases {
		b := BudgetCategory{LimitAmount: Money{Paise: tc.limit}, Spent: Money{Paise: tc.spent}}
		if got := b.SpendRatio(); got != tc.want {
			t.Fatalf("case %d: ratio = %v, want %v", i, got, tc.want)
		}
	}
}

func TestRecurringTemplateDueAndAdvance(t *testing.T) {
	today := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	rt := RecurringTemplate{
		Amount:      Money{Paise: 89900},
		Category:    "Subscriptions",
		Description: "Netflix Monthly",
		Type:        Expense,
		DayOfMonth:  10,
		IsActive:    true,
		NextRun:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := rt.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !rt.Due(today) {
		t.Fatal("template due today should report Due")
	}

	rt.Advance(today)
	if !rt.LastRun.Equal(today) {
		t.Fatalf("LastRun = %v, want %v", rt.LastRun, today)
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !rt.NextRun.Equal(want) {
		t.Fatalf("NextRun = %v, want %v", rt.NextRun, want)
	}
	if rt.Due(today) {
		t.Fatal("advanced template should no longer be due")
	}

	rt.IsActive = false
	if rt.Due(want) {
		t.Fatal("inactive template must never be due")
	}
}

func TestRecurringTemplateValidateDayOfMonth(t *testing.T) {
	rt := RecurringTemplate{
		Amount:      Money{Paise: 100},
		Category:    "c",
		Description: "d",
		Type:        Expense,
	}
	for _, day := range []int{0, 29, 31, -1} {
		rt.DayOfMonth = day
		if err := rt.Validate(); err == nil {
			t.Fatalf("day %d expected error", day)
		}
	}
	rt.DayOfMonth = 28
	if err := rt.Validate(); err != nil {
		t.Fatalf("day 28 expected ok, got %v", err)
	}
}

func TestSavingsGoalDepositLatchesCompletion(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	g := SavingsGoal{Title: "New Phone", TargetAmount: Money{Paise: 100000}}

	if err := g.Deposit(Money{Paise: 60000}, now); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if g.Completed() {
		t.Fatal("goal should not be completed at 60%")
	}

	first := now.AddDate(0, 0, 3)
	if err := g.Deposit(Money{Paise: 50000}, first); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !g.Completed() || !g.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want %v", g.CompletedAt, first)
	}

	// Further deposits must not move the completion timestamp.
	later := now.AddDate(0, 1, 0)
	if err := g.Deposit(Money{Paise: 10000}, later); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !g.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt moved to %v after later deposit", g.CompletedAt)
	}

	if err := g.Deposit(Money{Paise: 0}, later); err == nil {
		t.Fatal("zero deposit expected error")
	}
}
