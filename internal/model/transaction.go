// Package model defines the domain types shared across the application.
package model

import "time"

// Transaction represents a single monetary event recorded against a
// category. Amounts are stored as positive magnitudes; the direction comes
// from the category's kind. Entries are immutable once appended.
type Transaction struct {
	Date               time.Time
	CreatedAt          time.Time
	Description        string
	PaymentMethod      string
	Location           string
	Tags               string
	RecurringFrequency string
	ID                 int64
	CategoryID         int64
	Amount             float64
	Recurring          bool
}

// LedgerEntry is a transaction joined with its category's name and kind,
// the shape returned by ledger queries and consumed by exports.
type LedgerEntry struct {
	Date          time.Time
	Description   string
	Category      string
	Kind          CategoryKind
	PaymentMethod string
	Location      string
	Tags          string
	ID            int64
	Amount        float64
}

// DateOnly truncates t to its calendar date at midnight UTC. Transaction
// and budget dates carry day precision only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
