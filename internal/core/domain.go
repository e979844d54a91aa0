package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	Money struct {
		Paise int64
	}

	// Transaction is an immutable ledger fact. Amount is always positive;
	// direction is carried by Type, never by the sign of the amount.
	Transaction struct {
		ID          string
		Amount      Money
		Category    string
		Description string
		UPIHandle   string
		Type        TransactionType
		Date        time.Time
		CreatedAt   time.Time
	}

	// BudgetCategory is user configuration. Spent is derived from the
	// current month's transactions on every read and is never persisted.
	BudgetCategory struct {
		ID          string
		Name        string
		Icon        string
		LimitAmount Money
		Color       string
		Spent       Money
	}

	UserProfile struct {
		DisplayName       string
		City              string
		NextAllowanceDate time.Time // zero means "end of current month"
		MonthlyAllowance  Money
	}

	// BudgetSummary is a pure derived snapshot, recomputed on every read.
	BudgetSummary struct {
		TotalBudget       Money
		TotalSpent        Money
		TotalIncome       Money
		Remaining         Money
		DailyBurnRate     Money
		DaysUntilAllowance int
	}

	// RecurringTemplate materializes into a Transaction when due. Monthly
	// only; never runs without an explicit trigger.
	RecurringTemplate struct {
		ID          string
		Amount      Money
		Category    string
		Description string
		Type        TransactionType
		DayOfMonth  int // 1..28
		IsActive    bool
		NextRun     time.Time
		LastRun     time.Time
	}

	SavingsGoal struct {
		ID            string
		Title         string
		TargetAmount  Money
		CurrentAmount Money
		Icon          string
		CompletedAt   time.Time
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyCategory      = errors.New("empty category")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidDayOfMonth  = errors.New("day of month must be between 1 and 28")
	ErrEmptyTitle         = errors.New("empty title")
	ErrGoalCompleted      = errors.New("goal already completed")
	ErrNoParticipants     = errors.New("at least one named participant required")
)

func (m Money) Validate() error {
	if m.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Rupees returns the rupee value as float64 for display purposes only.
// Use paise for calculations to avoid floating-point drift.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

func (t TransactionType) Validate() error {
	switch t {
	case Expense, Income:
		return nil
	default:
		return ErrInvalidType
	}
}

func (tx Transaction) Validate() error {
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(tx.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(tx.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (b BudgetCategory) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyCategory
	}
	return b.LimitAmount.Validate()
}

// SpendRatio returns spent/limit as a fraction (1.0 == at the limit).
// A zero or negative limit yields 0.
func (b BudgetCategory) SpendRatio() float64 {
	if b.LimitAmount.Paise <= 0 {
		return 0
	}
	return float64(b.Spent.Paise) / float64(b.LimitAmount.Paise)
}

func (rt RecurringTemplate) Validate() error {
	if rt.DayOfMonth < 1 || rt.DayOfMonth > 28 {
		return ErrInvalidDayOfMonth
	}
	if err := rt.Type.Validate(); err != nil {
		return err
	}
	if err := rt.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(rt.Description)) == 0 {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(rt.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Due reports whether the template should materialize on the given day.
func (rt RecurringTemplate) Due(today time.Time) bool {
	if !rt.IsActive || rt.NextRun.IsZero() {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !rt.NextRun.After(day)
}

// Advance marks the template as run today and moves NextRun forward by
// exactly one calendar month.
func (rt *RecurringTemplate) Advance(today time.Time) {
	rt.LastRun = today
	rt.NextRun = rt.NextRun.AddDate(0, 1, 0)
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	return g.TargetAmount.Validate()
}

// Completed reports whether the goal has reached its target.
func (g SavingsGoal) Completed() bool {
	return !g.CompletedAt.IsZero()
}

// Deposit increases the saved amount. CompletedAt is latched on the first
// crossing of the target and never changes afterwards.
func (g *SavingsGoal) Deposit(amount Money, now time.Time) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	g.CurrentAmount.Paise += amount.Paise
	if g.CompletedAt.IsZero() && g.CurrentAmount.Paise >= g.TargetAmount.Paise {
		g.CompletedAt = now
	}
	return nil
}
