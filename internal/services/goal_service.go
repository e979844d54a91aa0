package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rupeerise/internal/core"
	"rupeerise/internal/store"
)

// GoalService manages savings goals and the completion latch.
type GoalService struct {
	store store.GoalStore
}

func NewGoalService(st store.GoalStore) *GoalService {
	return &GoalService{store: st}
}

func (s *GoalService) CreateGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	if err := s.store.CreateGoal(ctx, g); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("save goal: %w", err)
	}
	return g, nil
}

// Deposit adds money to a goal. Deposits into an already completed goal
// are rejected; the latch itself lives in the domain type.
func (s *GoalService) Deposit(ctx context.Context, id string, amount core.Money, now time.Time) (core.SavingsGoal, error) {
	g, err := s.store.GetGoal(ctx, id)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("get goal: %w", err)
	}
	if g.Completed() {
		return core.SavingsGoal{}, core.ErrGoalCompleted
	}

	if err := g.Deposit(amount, now); err != nil {
		return core.SavingsGoal{}, err
	}

	if err := s.store.UpdateGoal(ctx, g); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("update goal: %w", err)
	}

	if g.Completed() {
		slog.InfoContext(ctx, "Savings goal completed",
			"id", g.ID,
			"title", g.Title,
			"target_paise", g.TargetAmount.Paise)
	}

	return g, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	if err := s.store.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}
