package ledger

import (
	"context"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// Ledger is the append-only record store of monetary events. Entries are
// never edited; balances and reports are recomputed from the log, which
// keeps every derived figure reproducible at personal-finance volumes.
type Ledger struct {
	store service.Storage
	now   func() time.Time
}

// New creates a ledger backed by the given store.
func New(store service.Storage) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// NewEntry describes a transaction to append. Zero-value fields take the
// documented defaults: Date defaults to today and PaymentMethod to cash.
type NewEntry struct {
	Date               time.Time
	Description        string
	PaymentMethod      string
	Location           string
	Tags               string
	RecurringFrequency string
	CategoryID         int64
	Amount             float64
	Recurring          bool
}

// Append validates and records a new transaction, posting the signed
// amount to the primary account's balance as part of the same commit.
func (l *Ledger) Append(ctx context.Context, entry NewEntry) (int64, error) {
	if entry.Amount <= 0 {
		return 0, common.ErrInvalidAmount
	}

	date := entry.Date
	if date.IsZero() {
		date = l.now()
	}
	method := entry.PaymentMethod
	if method == "" {
		method = "cash"
	}

	txn := &model.Transaction{
		Amount:             entry.Amount,
		Description:        entry.Description,
		CategoryID:         entry.CategoryID,
		Date:               model.DateOnly(date),
		PaymentMethod:      method,
		Location:           entry.Location,
		Tags:               entry.Tags,
		Recurring:          entry.Recurring,
		RecurringFrequency: entry.RecurringFrequency,
	}

	return l.store.AppendTransaction(ctx, txn)
}

// Query returns ledger entries matching the filter, most recent first.
func (l *Ledger) Query(ctx context.Context, filter service.TransactionFilter) ([]model.LedgerEntry, error) {
	return l.store.QueryTransactions(ctx, filter)
}
