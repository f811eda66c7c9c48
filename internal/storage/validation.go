// Package storage provides the data persistence layer for the finance tracker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a transaction before any store mutation.
// The description may be empty; only the amount and date are constrained.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Amount <= 0 {
		return common.ErrInvalidAmount
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("transaction date must be a valid calendar date")
	}
	return nil
}

// validateBudget validates a budget before any store mutation.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if !budget.Period.Valid() {
		return fmt.Errorf("%w: %s", common.ErrInvalidPeriod, budget.Period)
	}
	if budget.EndDate.Before(budget.StartDate) {
		return common.ErrInvalidDateRange
	}
	return nil
}

// validateGoal validates a goal before any store mutation. A zero or
// negative target is rejected here so progress percentages never divide
// by zero.
func validateGoal(goal *model.Goal) error {
	if goal == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if err := validateString(goal.Name, "name"); err != nil {
		return err
	}
	if goal.TargetAmount <= 0 {
		return common.ErrInvalidTarget
	}
	return nil
}

// validateAccount validates an account before any store mutation.
func validateAccount(account *model.Account) error {
	if account == nil {
		return fmt.Errorf("%w: account", ErrNilParameter)
	}
	if err := validateString(account.Name, "name"); err != nil {
		return err
	}
	if !account.Kind.Valid() {
		return fmt.Errorf("%w: %s", common.ErrInvalidAccountKind, account.Kind)
	}
	return nil
}
