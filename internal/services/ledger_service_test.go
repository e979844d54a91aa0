package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rupeerise/internal/core"
	"rupeerise/internal/store"
	"rupeerise/internal/store/memory"
)

type fakePublisher struct {
	events []string
	err    error
}

func (f *fakePublisher) PublishLedgerEvent(_ context.Context, id, kind string) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, kind+":"+id)
	return nil
}

func validTx() core.Transaction {
	return core.Transaction{
		Amount:      core.Money{Paise: 12000},
		Category:    "Food & Dining",
		Description: "mess bill",
		Type:        core.Expense,
		Date:        time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and publishes created event", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := NewLedgerService(memory.New(), pub)

		created, err := svc.CreateTransaction(ctx, validTx())
		if err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
		if created.ID == "" {
			t.Error("ID not assigned")
		}
		if created.CreatedAt.IsZero() {
			t.Error("CreatedAt not assigned")
		}
		if len(pub.events) != 1 || pub.events[0] != "created:"+created.ID {
			t.Errorf("events = %v, want one created event", pub.events)
		}
	})

	t.Run("invalid transaction is rejected before storage", func(t *testing.T) {
		pub := &fakePublisher{}
		st := memory.New()
		svc := NewLedgerService(st, pub)

		tx := validTx()
		tx.Description = "  "
		if _, err := svc.CreateTransaction(ctx, tx); !errors.Is(err, core.ErrEmptyDescription) {
			t.Fatalf("err = %v, want ErrEmptyDescription", err)
		}

		list, _ := st.ListTransactions(ctx)
		if len(list) != 0 {
			t.Error("invalid transaction reached the store")
		}
		if len(pub.events) != 0 {
			t.Error("invalid transaction published an event")
		}
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker down")}
		st := memory.New()
		svc := NewLedgerService(st, pub)

		created, err := svc.CreateTransaction(ctx, validTx())
		if err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
		if _, err := st.GetTransaction(ctx, created.ID); err != nil {
			t.Errorf("transaction not saved despite broker failure: %v", err)
		}
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		svc := NewLedgerService(memory.New(), nil)
		if _, err := svc.CreateTransaction(ctx, validTx()); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	st := memory.New()
	svc := NewLedgerService(st, pub)

	created, err := svc.CreateTransaction(ctx, validTx())
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	if err := svc.DeleteTransaction(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if _, err := st.GetTransaction(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if len(pub.events) != 2 || pub.events[1] != "deleted:"+created.ID {
		t.Errorf("events = %v, want created then deleted", pub.events)
	}

	if err := svc.DeleteTransaction(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
