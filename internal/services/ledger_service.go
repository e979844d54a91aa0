// Package services orchestrates writes across storage and the AMQP
// event stream. Storage always wins: events are published after the
// local write succeeds and never fail the request.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rupeerise/internal/amqp"
	"rupeerise/internal/core"
	"rupeerise/internal/store"
)

// Publisher is the slice of the AMQP client the ledger needs.
type Publisher interface {
	PublishLedgerEvent(ctx context.Context, id, kind string) error
}

// LedgerService owns transaction writes: persist locally first, then
// notify the worker over AMQP.
type LedgerService struct {
	store     store.Store
	publisher Publisher
}

func NewLedgerService(st store.Store, publisher Publisher) *LedgerService {
	return &LedgerService{
		store:     st,
		publisher: publisher,
	}
}

// CreateTransaction validates, assigns an ID when missing, saves, and
// publishes a created event.
func (s *LedgerService) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.publishEvent(ctx, tx.ID, amqp.EventCreated)
	return tx, nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.publishEvent(ctx, id, amqp.EventDeleted)
	return nil
}

func (s *LedgerService) publishEvent(ctx context.Context, id, kind string) {
	if s.publisher == nil {
		slog.WarnContext(ctx, "AMQP publisher not available, skipping ledger event", "id", id, "kind", kind)
		return
	}
	if err := s.publisher.PublishLedgerEvent(ctx, id, kind); err != nil {
		// The transaction is already saved locally; the worker's
		// catch-up pass will pick it up.
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"id", id, "kind", kind, "error", err)
	}
}
