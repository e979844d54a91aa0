// Package storage is the SQLite persistence backend. All timestamps are
// stored as RFC 3339 strings; amounts are paise integers.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"rupeerise/internal/core"
	"rupeerise/internal/store"

	_ "modernc.org/sqlite"
)

// SyncStatus values for the export worker.
const (
	SyncPending = "pending"
	SyncDone    = "synced"
	SyncError   = "error"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ store.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	createdAt := tx.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, amount_paise, category, description, upi_handle, type, tx_date, created_at, sync_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Amount.Paise, tx.Category, tx.Description, tx.UPIHandle,
		string(tx.Type), formatTime(tx.Date), formatTime(createdAt), SyncPending)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"description", tx.Description,
		"amount_paise", tx.Amount.Paise,
		"category", tx.Category,
		"type", tx.Type)

	return nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, amount_paise, category, description, upi_handle, type, tx_date, created_at
		FROM transactions WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTransaction(row)
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount_paise, category, description, upi_handle, type, tx_date, created_at
		FROM transactions WHERE deleted_at IS NULL
		ORDER BY tx_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// DeleteTransaction soft deletes so the export worker can still
// reconcile the row.
func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		formatTime(time.Now().UTC()), id)
	if err != nil {
		return fmt.Errorf("soft delete transaction: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context) ([]core.BudgetCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, icon, color, limit_paise FROM budgets ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.BudgetCategory
	for rows.Next() {
		var b core.BudgetCategory
		if err := rows.Scan(&b.ID, &b.Name, &b.Icon, &b.Color, &b.LimitAmount.Paise); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *SQLiteRepository) UpdateBudgetLimit(ctx context.Context, id string, limit core.Money) error {
	if err := limit.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET limit_paise = ? WHERE id = ?`, limit.Paise, id)
	if err != nil {
		return fmt.Errorf("update budget limit: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) GetProfile(ctx context.Context) (core.UserProfile, error) {
	var (
		p    core.UserProfile
		next sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT display_name, city, next_allowance_date, monthly_allowance_paise
		FROM profiles WHERE id = 1`).
		Scan(&p.DisplayName, &p.City, &next, &p.MonthlyAllowance.Paise)
	if errors.Is(err, sql.ErrNoRows) {
		return core.UserProfile{}, store.ErrNotFound
	}
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}

	if next.Valid {
		p.NextAllowanceDate, err = parseTime(next.String)
		if err != nil {
			return core.UserProfile{}, fmt.Errorf("parse next allowance date: %w", err)
		}
	}
	return p, nil
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, p core.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET display_name = ?, city = ?, next_allowance_date = ?, monthly_allowance_paise = ?
		WHERE id = 1`,
		p.DisplayName, p.City, nullTime(p.NextAllowanceDate), p.MonthlyAllowance.Paise)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CreateTemplate(ctx context.Context, rt core.RecurringTemplate) error {
	if err := rt.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recurring_transactions (id, amount_paise, category, description, type, day_of_month, is_active, next_run, last_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rt.ID, rt.Amount.Paise, rt.Category, rt.Description, string(rt.Type),
		rt.DayOfMonth, rt.IsActive, nullTime(rt.NextRun), nullTime(rt.LastRun))
	if err != nil {
		return fmt.Errorf("insert recurring template: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListTemplates(ctx context.Context) ([]core.RecurringTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount_paise, category, description, type, day_of_month, is_active, next_run, last_run
		FROM recurring_transactions ORDER BY day_of_month`)
	if err != nil {
		return nil, fmt.Errorf("list recurring templates: %w", err)
	}
	defer rows.Close()

	var templates []core.RecurringTemplate
	for rows.Next() {
		var (
			rt     core.RecurringTemplate
			txType string
			next   sql.NullString
			last   sql.NullString
		)
		if err := rows.Scan(&rt.ID, &rt.Amount.Paise, &rt.Category, &rt.Description,
			&txType, &rt.DayOfMonth, &rt.IsActive, &next, &last); err != nil {
			return nil, fmt.Errorf("scan recurring template: %w", err)
		}
		rt.Type = core.TransactionType(txType)
		if rt.NextRun, err = parseNullTime(next); err != nil {
			return nil, fmt.Errorf("parse next_run: %w", err)
		}
		if rt.LastRun, err = parseNullTime(last); err != nil {
			return nil, fmt.Errorf("parse last_run: %w", err)
		}
		templates = append(templates, rt)
	}
	return templates, rows.Err()
}

func (r *SQLiteRepository) UpdateTemplate(ctx context.Context, rt core.RecurringTemplate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE recurring_transactions
		SET amount_paise = ?, category = ?, description = ?, type = ?, day_of_month = ?, is_active = ?, next_run = ?, last_run = ?
		WHERE id = ?`,
		rt.Amount.Paise, rt.Category, rt.Description, string(rt.Type), rt.DayOfMonth,
		rt.IsActive, nullTime(rt.NextRun), nullTime(rt.LastRun), rt.ID)
	if err != nil {
		return fmt.Errorf("update recurring template: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteTemplate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recurring template: %w", err)
	}
	return requireRow(res)
}

// shareRow is the JSON shape of one entry in the split_with column.
type shareRow struct {
	Name       string `json:"name"`
	SharePaise int64  `json:"share_paise"`
	Paid       bool   `json:"paid"`
}

func (r *SQLiteRepository) CreateBillSplit(ctx context.Context, b core.BillSplit) error {
	if err := b.Validate(); err != nil {
		return err
	}

	rows := make([]shareRow, 0, len(b.Shares))
	for _, s := range b.Shares {
		rows = append(rows, shareRow{Name: s.Name, SharePaise: s.Share.Paise, Paid: s.Paid})
	}
	splitWith, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal split shares: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bill_splits (id, title, total_amount_paise, split_with, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.TotalAmount.Paise, string(splitWith), formatTime(b.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert bill split: %w", err)
	}

	slog.InfoContext(ctx, "Bill split saved",
		"id", b.ID, "title", b.Title, "people", b.PeopleCount())
	return nil
}

func (r *SQLiteRepository) ListBillSplits(ctx context.Context) ([]core.BillSplit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, total_amount_paise, split_with, created_at
		FROM bill_splits ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bill splits: %w", err)
	}
	defer rows.Close()

	var splits []core.BillSplit
	for rows.Next() {
		var (
			b         core.BillSplit
			splitWith string
			created   string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.TotalAmount.Paise, &splitWith, &created); err != nil {
			return nil, fmt.Errorf("scan bill split: %w", err)
		}
		var shares []shareRow
		if err := json.Unmarshal([]byte(splitWith), &shares); err != nil {
			return nil, fmt.Errorf("unmarshal split shares: %w", err)
		}
		for _, s := range shares {
			b.Shares = append(b.Shares, core.BillShare{
				Name:  s.Name,
				Share: core.Money{Paise: s.SharePaise},
				Paid:  s.Paid,
			})
		}
		if b.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		splits = append(splits, b)
	}
	return splits, rows.Err()
}

func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO savings_goals (id, title, target_paise, current_paise, icon, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.TargetAmount.Paise, g.CurrentAmount.Paise, g.Icon, nullTime(g.CompletedAt))
	if err != nil {
		return fmt.Errorf("insert savings goal: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetGoal(ctx context.Context, id string) (core.SavingsGoal, error) {
	var (
		g         core.SavingsGoal
		completed sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, target_paise, current_paise, icon, completed_at
		FROM savings_goals WHERE id = ?`, id).
		Scan(&g.ID, &g.Title, &g.TargetAmount.Paise, &g.CurrentAmount.Paise, &g.Icon, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return core.SavingsGoal{}, store.ErrNotFound
	}
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("get savings goal: %w", err)
	}
	if g.CompletedAt, err = parseNullTime(completed); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("parse completed_at: %w", err)
	}
	return g, nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, target_paise, current_paise, icon, completed_at FROM savings_goals ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []core.SavingsGoal
	for rows.Next() {
		var (
			g         core.SavingsGoal
			completed sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Title, &g.TargetAmount.Paise, &g.CurrentAmount.Paise, &g.Icon, &completed); err != nil {
			return nil, fmt.Errorf("scan savings goal: %w", err)
		}
		if g.CompletedAt, err = parseNullTime(completed); err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteRepository) UpdateGoal(ctx context.Context, g core.SavingsGoal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE savings_goals SET title = ?, target_paise = ?, current_paise = ?, icon = ?, completed_at = ?
		WHERE id = ?`,
		g.Title, g.TargetAmount.Paise, g.CurrentAmount.Paise, g.Icon, nullTime(g.CompletedAt), g.ID)
	if err != nil {
		return fmt.Errorf("update savings goal: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete savings goal: %w", err)
	}
	return requireRow(res)
}

// ListPendingSync returns live transactions the export worker has not
// yet written to the backup ledger.
func (r *SQLiteRepository) ListPendingSync(ctx context.Context, limit int) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount_paise, category, description, upi_handle, type, tx_date, created_at
		FROM transactions WHERE deleted_at IS NULL AND sync_status = ?
		ORDER BY created_at LIMIT ?`, SyncPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending sync: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	if err := r.setSyncStatus(ctx, id, SyncDone); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction marked as synced", "id", id)
	return nil
}

func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id string) error {
	if err := r.setSyncStatus(ctx, id, SyncError); err != nil {
		return err
	}
	slog.WarnContext(ctx, "Transaction marked with sync error", "id", id)
	return nil
}

func (r *SQLiteRepository) setSyncStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET sync_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("set sync status: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx        core.Transaction
		txType    string
		txDate    string
		createdAt string
	)
	err := row.Scan(&tx.ID, &tx.Amount.Paise, &tx.Category, &tx.Description,
		&tx.UPIHandle, &txType, &txDate, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, store.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	tx.Type = core.TransactionType(txType)
	if tx.Date, err = parseTime(txDate); err != nil {
		return core.Transaction{}, fmt.Errorf("parse tx_date: %w", err)
	}
	if tx.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Transaction{}, fmt.Errorf("parse created_at: %w", err)
	}
	return tx, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTime(t)
}

func parseNullTime(s sql.NullString) (time.Time, error) {
	if !s.Valid {
		return time.Time{}, nil
	}
	return parseTime(s.String)
}
