// Package exchange moves ledger data across the CSV and JSON wire formats.
package exchange

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/1saman/personalfinancetracker/internal/service"
)

// csvHeader is the exact export column set. Import recognizes the same
// names.
var csvHeader = []string{
	"ID", "Amount", "Description", "Category", "Type",
	"Date", "Payment Method", "Location", "Tags",
}

// dateLayout is the calendar-date wire format.
const dateLayout = "2006-01-02"

// Exporter writes the full ledger, newest entries first, exactly as the
// query layer returns them.
type Exporter struct {
	store service.Storage
}

// NewExporter creates an exporter backed by the given store.
func NewExporter(store service.Storage) *Exporter {
	return &Exporter{store: store}
}

// ExportCSV writes every ledger entry as CSV with amounts as raw numeric
// values, not currency-formatted.
func (e *Exporter) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := e.store.QueryTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			strconv.FormatFloat(entry.Amount, 'f', -1, 64),
			entry.Description,
			entry.Category,
			string(entry.Kind),
			entry.Date.Format(dateLayout),
			entry.PaymentMethod,
			entry.Location,
			entry.Tags,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonEntry mirrors a ledger entry with the export key names.
type jsonEntry struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Location      string  `json:"location"`
	Tags          string  `json:"tags"`
}

// ExportJSON writes every ledger entry as an indented JSON array with
// non-ASCII characters preserved literally.
func (e *Exporter) ExportJSON(ctx context.Context, w io.Writer) error {
	entries, err := e.store.QueryTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	records := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		records = append(records, jsonEntry{
			ID:            entry.ID,
			Amount:        entry.Amount,
			Description:   entry.Description,
			Category:      entry.Category,
			Type:          string(entry.Kind),
			Date:          entry.Date.Format(dateLayout),
			PaymentMethod: entry.PaymentMethod,
			Location:      entry.Location,
			Tags:          entry.Tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
