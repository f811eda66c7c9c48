package report

import (
	"context"
	"testing"
	"time"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/storage"
	"github.com/1saman/personalfinancetracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendEntry(t *testing.T, store *storage.SQLiteStorage, categoryID int64, amount float64, date time.Time) {
	t.Helper()
	_, err := store.AppendTransaction(context.Background(), &model.Transaction{
		Amount:      amount,
		Description: "entry",
		CategoryID:  categoryID,
		Date:        date,
	})
	require.NoError(t, err)
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thirty-one day month",
			year:      2024,
			month:     time.March,
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     time.February,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in a common year",
			year:      2023,
			month:     time.February,
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december stays within its year",
			year:      2024,
			month:     time.December,
			wantStart: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := monthWindow(tt.year, tt.month)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestBalanceSummary(t *testing.T) {
	store := testutil.SetupTestDB(t)
	salary := testutil.MustCreateCategory(t, store, "Salary", model.KindIncome)
	food := testutil.MustCreateCategory(t, store, "Food", model.KindExpense)

	// Two months of history; the clock sits in March.
	appendEntry(t, store, salary.ID, 1000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, food.ID, 200, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, salary.ID, 1000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, food.ID, 300, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	engine := NewEngine(store).WithClock(fixedClock(2024, time.March, 15))
	summary, err := engine.BalanceSummary(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 2000, summary.TotalIncome, 0.001)
	assert.InDelta(t, 500, summary.TotalExpenses, 0.001)
	assert.InDelta(t, 1500, summary.NetWorth, 0.001)
	assert.InDelta(t, 1000, summary.MonthlyIncome, 0.001)
	assert.InDelta(t, 300, summary.MonthlyExpenses, 0.001)
	assert.InDelta(t, 700, summary.MonthlySavings, 0.001)
}

func TestBalanceSummary_EmptyLedger(t *testing.T) {
	store := testutil.SetupTestDB(t)

	engine := NewEngine(store)
	summary, err := engine.BalanceSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpenses)
	assert.Zero(t, summary.NetWorth)
}

func TestCategorySpending(t *testing.T) {
	store := testutil.SetupTestDB(t)
	salary := testutil.MustCreateCategory(t, store, "Salary", model.KindIncome)
	food := testutil.MustCreateCategory(t, store, "Food", model.KindExpense)

	appendEntry(t, store, food.ID, 200, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, salary.ID, 1000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, food.ID, 300, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	engine := NewEngine(store).WithClock(fixedClock(2024, time.March, 15))
	ctx := context.Background()

	monthly, err := engine.CategorySpending(ctx, model.SpendingMonthly)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "Salary", monthly[0].Category)
	assert.InDelta(t, 1000, monthly[0].Total, 0.001)
	assert.Equal(t, "Food", monthly[1].Category)
	assert.InDelta(t, 300, monthly[1].Total, 0.001)

	all, err := engine.CategorySpending(ctx, model.SpendingAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.InDelta(t, 500, all[1].Total, 0.001)

	_, err = engine.CategorySpending(ctx, model.SpendingPeriod("weekly"))
	assert.Error(t, err)
}

func TestMonthlyReport(t *testing.T) {
	store := testutil.SetupTestDB(t)
	salary := testutil.MustCreateCategory(t, store, "Salary", model.KindIncome)
	food := testutil.MustCreateCategory(t, store, "Food", model.KindExpense)

	appendEntry(t, store, salary.ID, 1000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	appendEntry(t, store, food.ID, 300, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	// Outside the month, must not leak in.
	appendEntry(t, store, food.ID, 999, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	engine := NewEngine(store)
	monthly, err := engine.MonthlyReport(context.Background(), 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", monthly.Period)
	assert.InDelta(t, 1000, monthly.Income, 0.001)
	assert.InDelta(t, 300, monthly.Expenses, 0.001)
	assert.InDelta(t, 700, monthly.Savings, 0.001)
	assert.InDelta(t, 70, monthly.SavingsRate, 0.001)
	assert.Len(t, monthly.Categories, 2)
	assert.Len(t, monthly.Daily, 2)
}

func TestMonthlyReport_NoIncome(t *testing.T) {
	store := testutil.SetupTestDB(t)
	food := testutil.MustCreateCategory(t, store, "Food", model.KindExpense)
	appendEntry(t, store, food.ID, 300, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	engine := NewEngine(store)
	monthly, err := engine.MonthlyReport(context.Background(), 2024, time.March)
	require.NoError(t, err)

	// Savings rate is defined as zero when there is no income.
	assert.Zero(t, monthly.SavingsRate)
	assert.InDelta(t, -300, monthly.Savings, 0.001)
}
