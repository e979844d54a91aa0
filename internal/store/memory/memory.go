// Package memory is the in-memory store backend, used for local
// development and handler tests. It is seeded with the default budget
// categories and profile a fresh install starts with.
package memory

import (
	"context"
	"sync"

	"rupeerise/internal/core"
	"rupeerise/internal/store"
)

type Store struct {
	mu        sync.Mutex
	txs       []core.Transaction
	budgets   []core.BudgetCategory
	profile   core.UserProfile
	templates []core.RecurringTemplate
	splits    []core.BillSplit
	goals     []core.SavingsGoal
}

var _ store.Store = (*Store)(nil)

// New returns a store seeded with the default budgets and profile.
func New() *Store {
	return &Store{
		budgets: DefaultBudgets(),
		profile: DefaultProfile(),
	}
}

// DefaultBudgets is the starting category set for a new ledger.
func DefaultBudgets() []core.BudgetCategory {
	return []core.BudgetCategory{
		{ID: "cat-food", Name: "Food & Dining", Icon: "🍜", Color: "#f97316", LimitAmount: core.RupeesToPaise(5000)},
		{ID: "cat-transport", Name: "Transport", Icon: "🛺", Color: "#3b82f6", LimitAmount: core.RupeesToPaise(2000)},
		{ID: "cat-entertainment", Name: "Entertainment", Icon: "🎬", Color: "#a855f7", LimitAmount: core.RupeesToPaise(2500)},
		{ID: "cat-books", Name: "Books & Supplies", Icon: "📚", Color: "#22c55e", LimitAmount: core.RupeesToPaise(3000)},
		{ID: "cat-subs", Name: "Subscriptions", Icon: "📺", Color: "#ef4444", LimitAmount: core.RupeesToPaise(1500)},
		{ID: "cat-rent", Name: "PG/Rent", Icon: "🏠", Color: "#eab308", LimitAmount: core.RupeesToPaise(8000)},
	}
}

func DefaultProfile() core.UserProfile {
	return core.UserProfile{
		DisplayName:      "Student",
		City:             core.DefaultCity,
		MonthlyAllowance: core.RupeesToPaise(15000),
	}
}

func (s *Store) CreateTransaction(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

func (s *Store) GetTransaction(_ context.Context, id string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return core.Transaction{}, store.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.txs {
		if tx.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListBudgets(_ context.Context) ([]core.BudgetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetCategory(nil), s.budgets...), nil
}

func (s *Store) UpdateBudgetLimit(_ context.Context, id string, limit core.Money) error {
	if err := limit.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets[i].LimitAmount = limit
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) GetProfile(_ context.Context) (core.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile, nil
}

func (s *Store) UpdateProfile(_ context.Context, p core.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return nil
}

func (s *Store) CreateTemplate(_ context.Context, rt core.RecurringTemplate) error {
	if err := rt.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, rt)
	return nil
}

func (s *Store) ListTemplates(_ context.Context) ([]core.RecurringTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RecurringTemplate(nil), s.templates...), nil
}

func (s *Store) UpdateTemplate(_ context.Context, rt core.RecurringTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == rt.ID {
			s.templates[i] = rt
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteTemplate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rt := range s.templates {
		if rt.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) CreateBillSplit(_ context.Context, b core.BillSplit) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.splits = append(s.splits, b)
	return nil
}

func (s *Store) ListBillSplits(_ context.Context) ([]core.BillSplit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.BillSplit, len(s.splits))
	for i, b := range s.splits {
		out[i] = b
		out[i].Shares = append([]core.BillShare(nil), b.Shares...)
	}
	return out, nil
}

func (s *Store) CreateGoal(_ context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, g)
	return nil
}

func (s *Store) GetGoal(_ context.Context, id string) (core.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return core.SavingsGoal{}, store.ErrNotFound
}

func (s *Store) ListGoals(_ context.Context) ([]core.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.SavingsGoal(nil), s.goals...), nil
}

func (s *Store) UpdateGoal(_ context.Context, g core.SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			s.goals[i] = g
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteGoal(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
