// Package store defines the persistence ports the HTTP and worker
// layers depend on. Implementations live in store/memory and in
// internal/storage (SQLite).
package store

import (
	"context"
	"errors"

	"rupeerise/internal/core"
)

var ErrNotFound = errors.New("not found")

type (
	TransactionStore interface {
		CreateTransaction(ctx context.Context, tx core.Transaction) error
		GetTransaction(ctx context.Context, id string) (core.Transaction, error)
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
		DeleteTransaction(ctx context.Context, id string) error
	}

	BudgetStore interface {
		ListBudgets(ctx context.Context) ([]core.BudgetCategory, error)
		UpdateBudgetLimit(ctx context.Context, id string, limit core.Money) error
	}

	ProfileStore interface {
		GetProfile(ctx context.Context) (core.UserProfile, error)
		UpdateProfile(ctx context.Context, p core.UserProfile) error
	}

	RecurringStore interface {
		CreateTemplate(ctx context.Context, rt core.RecurringTemplate) error
		ListTemplates(ctx context.Context) ([]core.RecurringTemplate, error)
		UpdateTemplate(ctx context.Context, rt core.RecurringTemplate) error
		DeleteTemplate(ctx context.Context, id string) error
	}

	BillSplitStore interface {
		CreateBillSplit(ctx context.Context, b core.BillSplit) error
		ListBillSplits(ctx context.Context) ([]core.BillSplit, error)
	}

	GoalStore interface {
		CreateGoal(ctx context.Context, g core.SavingsGoal) error
		GetGoal(ctx context.Context, id string) (core.SavingsGoal, error)
		ListGoals(ctx context.Context) ([]core.SavingsGoal, error)
		UpdateGoal(ctx context.Context, g core.SavingsGoal) error
		DeleteGoal(ctx context.Context, id string) error
	}

	// Store is the full persistence surface a backend must provide.
	Store interface {
		TransactionStore
		BudgetStore
		ProfileStore
		RecurringStore
		BillSplitStore
		GoalStore
	}
)
