// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Database errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Validation errors.
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidCategoryKind = errors.New("category kind must be income or expense")
	ErrInvalidAccountKind  = errors.New("invalid account kind")
	ErrInvalidPeriod       = errors.New("invalid budget period")
	ErrInvalidDateRange    = errors.New("end date must not precede start date")
	ErrInvalidTarget       = errors.New("goal target must be greater than zero")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
