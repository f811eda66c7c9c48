package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
	"github.com/1saman/personalfinancetracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_RejectsNonPositiveAmounts(t *testing.T) {
	store := testutil.SetupTestDB(t)
	led := New(store)

	_, err := led.Append(context.Background(), NewEntry{Amount: 0, Description: "x", CategoryID: 1})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = led.Append(context.Background(), NewEntry{Amount: -10, Description: "x", CategoryID: 1})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestAppend_Defaults(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cat := testutil.MustCreateCategory(t, store, "Food", model.KindExpense)

	led := New(store)
	id, err := led.Append(context.Background(), NewEntry{
		Amount:      12.50,
		Description: "coffee",
		CategoryID:  cat.ID,
		Date:        time.Date(2024, 3, 10, 17, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	entries, err := led.Query(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Payment method defaults to cash, times truncate to the calendar date.
	assert.Equal(t, "cash", entries[0].PaymentMethod)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), entries[0].Date)
}

func TestRegistry_FindOrCreate(t *testing.T) {
	store := testutil.SetupTestDB(t)
	registry := NewRegistry(store)
	ctx := context.Background()

	created, err := registry.FindOrCreate(ctx, "Coffee Shops", model.KindExpense)
	require.NoError(t, err)
	require.NotNil(t, created)

	// Second resolution returns the same category, kind ignored.
	found, err := registry.FindOrCreate(ctx, "Coffee Shops", model.KindIncome)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, model.KindExpense, found.Kind)

	count, err := store.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_SeedDefaults(t *testing.T) {
	store := testutil.SetupTestDB(t)
	registry := NewRegistry(store)
	ctx := context.Background()

	require.NoError(t, registry.SeedDefaults(ctx))
	first, err := store.CountCategories(ctx)
	require.NoError(t, err)
	require.Positive(t, first)

	require.NoError(t, registry.SeedDefaults(ctx))
	second, err := store.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
