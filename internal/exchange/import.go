package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/ledger"
	"github.com/1saman/personalfinancetracker/internal/model"
)

// requiredColumns must all be present in an import header.
var requiredColumns = []string{"Category", "Description", "Amount", "Date"}

// RowError records a skipped import row and why it was rejected.
type RowError struct {
	Err  error
	Line int
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// ImportResult summarizes a bulk import. Rows that fail validation are
// reported here and skipped; earlier rows stay committed, so a partial
// import is an accepted outcome rather than a transactional unit.
type ImportResult struct {
	Skipped  []RowError
	Imported int
}

// Importer reads transactions from CSV, creating missing categories on
// the fly.
type Importer struct {
	registry *ledger.Registry
	ledger   *ledger.Ledger
}

// NewImporter creates an importer over the given registry and ledger.
func NewImporter(registry *ledger.Registry, led *ledger.Ledger) *Importer {
	return &Importer{registry: registry, ledger: led}
}

// ImportCSV reads rows sequentially, resolving each row's category by
// exact name (creating it with the row's Type, default expense) and
// appending a transaction. A malformed row is reported and skipped; the
// import continues with the next row.
func (i *Importer) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{Line: line, Err: err})
			continue
		}

		if err := i.importRow(ctx, columns, record); err != nil {
			common.LogError(err, "skipping import row", common.Fields{"line": line})
			result.Skipped = append(result.Skipped, RowError{Line: line, Err: err})
			continue
		}
		result.Imported++
	}

	common.LogInfo("import finished", common.Fields{
		"imported": result.Imported,
		"skipped":  len(result.Skipped),
	})
	return result, nil
}

func (i *Importer) importRow(ctx context.Context, columns map[string]int, record []string) error {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	amount, err := strconv.ParseFloat(field("Amount"), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", field("Amount"), err)
	}

	date, err := time.Parse(dateLayout, field("Date"))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", field("Date"), err)
	}

	kind := model.CategoryKind(field("Type"))
	if kind == "" {
		kind = model.KindExpense
	}
	if !kind.Valid() {
		return fmt.Errorf("invalid category type %q", field("Type"))
	}

	category, err := i.registry.FindOrCreate(ctx, field("Category"), kind)
	if err != nil {
		return fmt.Errorf("failed to resolve category %q: %w", field("Category"), err)
	}

	method := field("Payment Method")
	if method == "" {
		method = "cash"
	}

	_, err = i.ledger.Append(ctx, ledger.NewEntry{
		Amount:        amount,
		Description:   field("Description"),
		CategoryID:    category.ID,
		Date:          date,
		PaymentMethod: method,
		Location:      field("Location"),
		Tags:          field("Tags"),
	})
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}
