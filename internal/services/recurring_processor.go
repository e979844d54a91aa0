package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rupeerise/internal/core"
	"rupeerise/internal/store"
)

// RecurringProcessor materializes due recurring templates into real
// transactions. It only ever runs on an explicit trigger (the worker
// tick or the run endpoint), never as a side effect of a read.
type RecurringProcessor struct {
	store  store.RecurringStore
	ledger *LedgerService
}

func NewRecurringProcessor(st store.RecurringStore, ledger *LedgerService) *RecurringProcessor {
	return &RecurringProcessor{
		store:  st,
		ledger: ledger,
	}
}

// ProcessDue materializes every active template whose NextRun is today
// or earlier, then advances it by one calendar month. Returns the
// number of transactions created.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	if p.store == nil || p.ledger == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	templates, err := p.store.ListTemplates(ctx)
	if err != nil {
		return 0, fmt.Errorf("list recurring templates: %w", err)
	}

	slog.InfoContext(ctx, "Processing recurring templates",
		"total", len(templates),
		"processing_date", now.Format("2006-01-02"))

	processed := 0
	for _, rt := range templates {
		if !rt.Due(now) {
			continue
		}

		tx := core.Transaction{
			Amount:      rt.Amount,
			Category:    rt.Category,
			Description: rt.Description,
			Type:        rt.Type,
			Date:        now,
		}

		created, err := p.ledger.CreateTransaction(ctx, tx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to materialize recurring template",
				"template_id", rt.ID,
				"description", rt.Description,
				"error", err)
			continue
		}

		rt.Advance(now)
		if err := p.store.UpdateTemplate(ctx, rt); err != nil {
			// Transaction exists; a failed advance means one duplicate
			// on the next run, which the user can delete.
			slog.ErrorContext(ctx, "Failed to advance recurring template",
				"template_id", rt.ID,
				"error", err)
		}

		processed++
		slog.InfoContext(ctx, "Created transaction from recurring template",
			"template_id", rt.ID,
			"transaction_id", created.ID,
			"description", rt.Description,
			"amount_paise", rt.Amount.Paise,
			"next_run", rt.NextRun.Format("2006-01-02"))
	}

	slog.InfoContext(ctx, "Recurring template processing complete",
		"processed", processed,
		"total_checked", len(templates))

	return processed, nil
}
