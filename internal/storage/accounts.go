package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
)

// CreateAccount creates a new account. The earliest-created account acts
// as the primary one for balance posting.
func (s *SQLiteStorage) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateAccount(account); err != nil {
		return 0, err
	}

	currency := account.Currency
	if currency == "" {
		currency = "USD"
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE name = ?)`, account.Name).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return 0, fmt.Errorf("%w: account %q", common.ErrDuplicateEntry, account.Name)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (name, kind, balance, currency, bank, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		account.Name,
		string(account.Kind),
		account.Balance,
		currency,
		account.Bank,
		time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get account ID: %w", err)
	}

	slog.Info("created account", "id", id, "name", account.Name, "kind", account.Kind)
	return id, nil
}

// PrimaryAccount returns the primary account, or nil when none exists.
func (s *SQLiteStorage) PrimaryAccount(ctx context.Context) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, balance, currency, bank, created_at
		FROM accounts
		ORDER BY id
		LIMIT 1`)

	account, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query primary account: %w", err)
	}

	return account, nil
}

// ListAccounts returns all accounts ordered by creation.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, kind, balance, currency, bank, created_at
		FROM accounts
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

func scanAccount(scan func(dest ...any) error) (*model.Account, error) {
	var account model.Account
	var kind string
	var bank sql.NullString
	if err := scan(
		&account.ID,
		&account.Name,
		&kind,
		&account.Balance,
		&account.Currency,
		&bank,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	account.Kind = model.AccountKind(kind)
	account.Bank = bank.String
	return &account, nil
}
