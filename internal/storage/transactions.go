package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// AppendTransaction records a new ledger entry and posts the signed
// balance delta to the primary account in the same database transaction.
// The ledger is append-only: entries are never updated or deleted, and
// every derived figure is recomputed from this log.
func (s *SQLiteStorage) AppendTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The category reference must resolve; its kind fixes the balance sign.
	var kind string
	err = tx.QueryRowContext(ctx, `SELECT kind FROM categories WHERE id = ?`, txn.CategoryID).Scan(&kind)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: category %d", common.ErrNotFound, txn.CategoryID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve category: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (amount, description, category_id, date,
			payment_method, location, tags, recurring, recurring_frequency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.Amount,
		txn.Description,
		txn.CategoryID,
		model.DateOnly(txn.Date),
		txn.PaymentMethod,
		txn.Location,
		txn.Tags,
		txn.Recurring,
		txn.RecurringFrequency,
		time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	if err := postBalanceDelta(ctx, tx, model.CategoryKind(kind), txn.Amount); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Debug("appended transaction", "id", id, "amount", txn.Amount, "category_id", txn.CategoryID)
	return id, nil
}

// postBalanceDelta applies the signed amount to the primary account.
// With no account on file the update is a no-op, not an error.
func postBalanceDelta(ctx context.Context, tx *sql.Tx, kind model.CategoryKind, amount float64) error {
	var accountID int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM accounts ORDER BY id LIMIT 1`).Scan(&accountID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find primary account: %w", err)
	}

	delta := amount
	if kind == model.KindExpense {
		delta = -amount
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + ? WHERE id = ?`, delta, accountID); err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	return nil
}

// QueryTransactions returns ledger entries joined with their category,
// most recent first. Filters come from an enumerated predicate set; every
// value, including the limit, is a bound parameter.
func (s *SQLiteStorage) QueryTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.amount, t.description, c.name, c.kind, t.date,
		       t.payment_method, t.location, t.tags
		FROM transactions t
		JOIN categories c ON t.category_id = c.id`

	var conditions []string
	var args []any

	if filter.StartDate != nil {
		conditions = append(conditions, "t.date >= ?")
		args = append(args, model.DateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "t.date <= ?")
		args = append(args, model.DateOnly(*filter.EndDate))
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY t.date DESC, t.id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		var entry model.LedgerEntry
		var kind string
		var location, tags sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.Amount,
			&entry.Description,
			&entry.Category,
			&kind,
			&entry.Date,
			&entry.PaymentMethod,
			&location,
			&tags,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		entry.Kind = model.CategoryKind(kind)
		entry.Location = location.String
		entry.Tags = tags.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
