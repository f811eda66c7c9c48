package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

func TestAppendTransaction_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	cat := mustCreateCategory(t, store, "Food", model.KindExpense)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		txn     *model.Transaction
		wantErr error
	}{
		{
			name:    "zero amount rejected",
			txn:     &model.Transaction{Amount: 0, Description: "x", CategoryID: cat.ID, Date: date},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "negative amount rejected",
			txn:     &model.Transaction{Amount: -5, Description: "x", CategoryID: cat.ID, Date: date},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "unknown category rejected",
			txn:     &model.Transaction{Amount: 10, Description: "x", CategoryID: 999, Date: date},
			wantErr: common.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.AppendTransaction(ctx, tt.txn)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAppendTransaction_EchoesThroughQuery(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	cat := mustCreateCategory(t, store, "Food", model.KindExpense)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	id, err := store.AppendTransaction(ctx, &model.Transaction{
		Amount:        42.50,
		Description:   "lunch",
		CategoryID:    cat.ID,
		Date:          date,
		PaymentMethod: "card",
		Location:      "downtown",
		Tags:          "work,food",
	})
	if err != nil {
		t.Fatalf("AppendTransaction failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero transaction ID")
	}

	entries, err := store.QueryTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		t.Fatalf("QueryTransactions failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.ID != id {
		t.Errorf("Expected ID %d, got %d", id, entry.ID)
	}
	if entry.Amount != 42.50 {
		t.Errorf("Expected amount 42.50, got %v", entry.Amount)
	}
	if entry.Category != "Food" {
		t.Errorf("Expected category Food, got %q", entry.Category)
	}
	if entry.Kind != model.KindExpense {
		t.Errorf("Expected expense kind, got %q", entry.Kind)
	}
	if !entry.Date.Equal(date) {
		t.Errorf("Expected date %v, got %v", date, entry.Date)
	}
	if entry.PaymentMethod != "card" {
		t.Errorf("Expected payment method card, got %q", entry.PaymentMethod)
	}
	if entry.Location != "downtown" || entry.Tags != "work,food" {
		t.Errorf("Unexpected location/tags: %q / %q", entry.Location, entry.Tags)
	}
}

func TestAppendTransaction_EmptyDescriptionAllowed(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	cat := mustCreateCategory(t, store, "Food", model.KindExpense)

	// The description is informational only; an empty one is valid.
	id, err := store.AppendTransaction(ctx, &model.Transaction{
		Amount:     25,
		CategoryID: cat.ID,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AppendTransaction failed: %v", err)
	}

	entries, err := store.QueryTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		t.Fatalf("QueryTransactions failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != id {
		t.Fatalf("Expected the appended entry back, got %+v", entries)
	}
	if entries[0].Description != "" {
		t.Errorf("Expected empty description, got %q", entries[0].Description)
	}
}

func TestAppendTransaction_PostsBalanceToPrimaryAccount(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	expense := mustCreateCategory(t, store, "Food", model.KindExpense)
	income := mustCreateCategory(t, store, "Salary", model.KindIncome)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	primaryID, err := store.CreateAccount(ctx, &model.Account{
		Name: "Checking", Kind: model.AccountChecking, Balance: 100,
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	// A second account must never receive balance deltas.
	if _, err := store.CreateAccount(ctx, &model.Account{
		Name: "Savings", Kind: model.AccountSavings, Balance: 50,
	}); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	mustAppend(t, store, expense.ID, 30, "groceries", date)
	mustAppend(t, store, income.ID, 500, "paycheck", date)

	primary, err := store.PrimaryAccount(ctx)
	if err != nil {
		t.Fatalf("PrimaryAccount failed: %v", err)
	}
	if primary == nil || primary.ID != primaryID {
		t.Fatalf("Expected earliest account %d as primary, got %+v", primaryID, primary)
	}
	if primary.Balance != 570 {
		t.Errorf("Expected balance 100 - 30 + 500 = 570, got %v", primary.Balance)
	}

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if accounts[1].Balance != 50 {
		t.Errorf("Secondary account balance changed: %v", accounts[1].Balance)
	}
}

func TestAppendTransaction_NoAccountIsNoOp(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	cat := mustCreateCategory(t, store, "Food", model.KindExpense)

	// Recording with no account on file must still succeed.
	mustAppend(t, store, cat.ID, 25, "lunch", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	primary, err := store.PrimaryAccount(ctx)
	if err != nil {
		t.Fatalf("PrimaryAccount failed: %v", err)
	}
	if primary != nil {
		t.Errorf("Expected no primary account, got %+v", primary)
	}
}

func TestQueryTransactions_Filters(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	food := mustCreateCategory(t, store, "Food", model.KindExpense)
	salary := mustCreateCategory(t, store, "Salary", model.KindIncome)

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mustAppend(t, store, food.ID, 10, "january lunch", jan)
	mustAppend(t, store, food.ID, 20, "february lunch", feb)
	mustAppend(t, store, salary.ID, 1000, "march paycheck", mar)

	tests := []struct {
		name   string
		filter service.TransactionFilter
		want   []string
	}{
		{
			name:   "no filter returns all newest first",
			filter: service.TransactionFilter{},
			want:   []string{"march paycheck", "february lunch", "january lunch"},
		},
		{
			name:   "start date is inclusive",
			filter: service.TransactionFilter{StartDate: &feb},
			want:   []string{"march paycheck", "february lunch"},
		},
		{
			name:   "end date is inclusive",
			filter: service.TransactionFilter{EndDate: &feb},
			want:   []string{"february lunch", "january lunch"},
		},
		{
			name:   "date range",
			filter: service.TransactionFilter{StartDate: &feb, EndDate: &feb},
			want:   []string{"february lunch"},
		},
		{
			name:   "category filter",
			filter: service.TransactionFilter{CategoryID: &food.ID},
			want:   []string{"february lunch", "january lunch"},
		},
		{
			name:   "limit caps the result",
			filter: service.TransactionFilter{Limit: 2},
			want:   []string{"march paycheck", "february lunch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.QueryTransactions(ctx, tt.filter)
			if err != nil {
				t.Fatalf("QueryTransactions failed: %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("Expected %d entries, got %d", len(tt.want), len(entries))
			}
			for i, desc := range tt.want {
				if entries[i].Description != desc {
					t.Errorf("Position %d: expected %q, got %q", i, desc, entries[i].Description)
				}
			}
		})
	}
}

func TestQueryTransactions_SameDayOrdering(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cat := mustCreateCategory(t, store, "Food", model.KindExpense)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mustAppend(t, store, cat.ID, 1, "first", date)
	mustAppend(t, store, cat.ID, 2, "second", date)

	entries, err := store.QueryTransactions(context.Background(), service.TransactionFilter{})
	if err != nil {
		t.Fatalf("QueryTransactions failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Ties on date break by insertion order, newest first.
	if entries[0].Description != "second" || entries[1].Description != "first" {
		t.Errorf("Unexpected order: %q then %q", entries[0].Description, entries[1].Description)
	}
}
