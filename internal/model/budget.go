package model

import "time"

// BudgetPeriod describes the nominal cadence of a budget. The explicit
// start/end window governs status math; the period is descriptive.
type BudgetPeriod string

const (
	// PeriodWeekly is a budget reviewed weekly.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodMonthly is a budget reviewed monthly.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly is a budget reviewed yearly.
	PeriodYearly BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the allowed values.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// DefaultAlertThreshold is the spend fraction at which a budget raises an
// alert when none is specified.
const DefaultAlertThreshold = 0.8

// Budget is a spending limit for one category over an explicit date window.
// Budgets bind to the category's stable id, not its display name, so a
// rename never detaches a budget from its transactions. Windows are never
// auto-renewed; a new window requires a new budget.
type Budget struct {
	StartDate      time.Time
	EndDate        time.Time
	CreatedAt      time.Time
	CategoryName   string
	Period         BudgetPeriod
	ID             int64
	CategoryID     int64
	Amount         float64
	AlertThreshold float64
}

// BudgetStatus is the evaluated spend-to-limit state of one active budget.
type BudgetStatus struct {
	Category   string
	Period     BudgetPeriod
	Budget     float64
	Spent      float64
	Remaining  float64
	Percentage float64
	Alert      bool
}
