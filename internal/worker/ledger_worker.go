// Package worker consumes ledger events, re-evaluates alert rules on
// the fresh snapshot, and mirrors transactions to the backup sheet.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"rupeerise/internal/amqp"
	"rupeerise/internal/analytics"
	"rupeerise/internal/core"
	"rupeerise/internal/store"
)

// Store is the persistence surface the worker needs: the full read
// model plus the sync-state queue.
type Store interface {
	store.Store
	ListPendingSync(ctx context.Context, limit int) ([]core.Transaction, error)
	MarkSynced(ctx context.Context, id string) error
	MarkSyncError(ctx context.Context, id string) error
}

// Exporter mirrors a transaction to the backup ledger.
type Exporter interface {
	AppendTransaction(ctx context.Context, tx core.Transaction) (string, error)
}

// Consumer is the slice of the AMQP client the worker runs on.
type Consumer interface {
	ConsumeMessages(ctx context.Context, handler func(context.Context, *amqp.LedgerEventMessage) error) error
}

type LedgerWorker struct {
	store     Store
	exporter  Exporter
	batchSize int
}

func NewLedgerWorker(st Store, exporter Exporter, batchSize int) *LedgerWorker {
	return &LedgerWorker{
		store:     st,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// Run starts the event consumer and the periodic catch-up loop,
// returning when either fails or ctx is done.
func (w *LedgerWorker) Run(ctx context.Context, consumer Consumer, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.ConsumeMessages(ctx, w.HandleLedgerEvent)
	})

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.ProcessPending(ctx); err != nil {
					slog.ErrorContext(ctx, "Periodic catch-up failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// HandleLedgerEvent processes one event from the queue. Created events
// are exported; every event triggers a fresh alert evaluation.
func (w *LedgerWorker) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	slog.InfoContext(ctx, "Processing ledger event", "id", msg.ID, "kind", msg.Kind)

	w.evaluateAlerts(ctx)

	if msg.Kind != amqp.EventCreated {
		return nil
	}

	tx, err := w.store.GetTransaction(ctx, msg.ID)
	if errors.Is(err, store.ErrNotFound) {
		// Deleted before the worker got to it; nothing to mirror.
		slog.WarnContext(ctx, "Transaction gone before export", "id", msg.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	return w.export(ctx, tx)
}

// ProcessPending exports transactions the event stream missed. It is a
// backup path: a lost AMQP message must never strand a row.
func (w *LedgerWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.store.ListPendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending sync: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	for _, tx := range pending {
		if err := w.export(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Pending export failed", "id", tx.ID, "error", err)
		}
	}
	return nil
}

func (w *LedgerWorker) export(ctx context.Context, tx core.Transaction) error {
	if w.exporter == nil {
		slog.WarnContext(ctx, "No exporter configured, skipping backup", "id", tx.ID)
		return nil
	}

	ref, err := w.exporter.AppendTransaction(ctx, tx)
	if err != nil {
		if markErr := w.store.MarkSyncError(ctx, tx.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", tx.ID, "error", markErr)
		}
		return fmt.Errorf("export transaction: %w", err)
	}

	if err := w.store.MarkSynced(ctx, tx.ID); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}

	slog.InfoContext(ctx, "Transaction exported to backup sheet", "id", tx.ID, "ref", ref)
	return nil
}

// evaluateAlerts recomputes the alert set from the current snapshot and
// logs what fires. Evaluation failures only log; the event is still
// acked so the queue never wedges on a read error.
func (w *LedgerWorker) evaluateAlerts(ctx context.Context) {
	now := time.Now()

	txs, err := w.store.ListTransactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Alert evaluation: list transactions", "error", err)
		return
	}
	budgets, err := w.store.ListBudgets(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Alert evaluation: list budgets", "error", err)
		return
	}
	profile, err := w.store.GetProfile(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Alert evaluation: get profile", "error", err)
		return
	}

	cats := analytics.DeriveCategorySpend(txs, budgets, now)
	summary := analytics.ComputeSummary(cats, txs, profile, now)

	for _, alert := range analytics.EvaluateAlerts(cats, summary) {
		slog.InfoContext(ctx, "Budget alert fired",
			"kind", alert.Kind,
			"level", alert.Level,
			"title", alert.Title)
	}
}
