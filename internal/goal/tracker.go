// Package goal tracks progress toward savings targets.
package goal

import (
	"context"
	"time"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/service"
)

// Tracker manages savings goals. Progress is additive and the achieved
// flag never resets once set.
type Tracker struct {
	store service.Storage
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(store service.Storage) *Tracker {
	return &Tracker{store: store}
}

// Add creates a goal. A target of zero or less is rejected so progress
// percentages are always well defined.
func (t *Tracker) Add(ctx context.Context, name string, targetAmount float64, targetDate *time.Time, description string, priority int) (int64, error) {
	if targetAmount <= 0 {
		return 0, common.ErrInvalidTarget
	}
	if priority == 0 {
		priority = 1
	}

	goal := &model.Goal{
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		Description:  description,
		Priority:     priority,
	}
	return t.store.CreateGoal(ctx, goal)
}

// RecordProgress adds amount to the goal's accumulated total. Negative
// amounts are allowed as corrections; achievement is evaluated and
// persisted in the same commit.
func (t *Tracker) RecordProgress(ctx context.Context, goalID int64, amount float64) error {
	return t.store.AddGoalProgress(ctx, goalID, amount)
}

// Get returns one goal by id.
func (t *Tracker) Get(ctx context.Context, goalID int64) (*model.Goal, error) {
	return t.store.GetGoalByID(ctx, goalID)
}

// List returns all goals ordered by priority then target date, each
// annotated with its progress percentage.
func (t *Tracker) List(ctx context.Context) ([]model.Goal, error) {
	return t.store.ListGoals(ctx)
}
