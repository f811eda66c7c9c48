package goal

import (
	"context"
	"testing"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_RejectsNonPositiveTarget(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := NewTracker(store)

	_, err := tracker.Add(context.Background(), "Vacation", 0, nil, "", 1)
	assert.ErrorIs(t, err, common.ErrInvalidTarget)

	_, err = tracker.Add(context.Background(), "Vacation", -50, nil, "", 1)
	assert.ErrorIs(t, err, common.ErrInvalidTarget)
}

func TestAdd_DefaultPriority(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := NewTracker(store)
	ctx := context.Background()

	id, err := tracker.Add(ctx, "Emergency Fund", 1000, nil, "three months of expenses", 0)
	require.NoError(t, err)

	goal, err := tracker.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, goal.Priority)
	assert.Equal(t, "three months of expenses", goal.Description)
}

func TestRecordProgress_Achievement(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := NewTracker(store)
	ctx := context.Background()

	id, err := tracker.Add(ctx, "Vacation", 500, nil, "", 1)
	require.NoError(t, err)

	require.NoError(t, tracker.RecordProgress(ctx, id, 250))
	goal, err := tracker.Get(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, goal.Progress, 0.001)
	assert.False(t, goal.Achieved)

	require.NoError(t, tracker.RecordProgress(ctx, id, 250))
	goal, err = tracker.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, goal.Achieved)
	assert.InDelta(t, 100.0, goal.Progress, 0.001)
}
