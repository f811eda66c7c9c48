package model

import "time"

// BalanceSummary is the overall financial picture derived from the ledger.
// Totals cover full history; monthly figures cover the current calendar
// month from its first day.
type BalanceSummary struct {
	TotalIncome     float64
	TotalExpenses   float64
	NetWorth        float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	MonthlySavings  float64
}

// SpendingPeriod selects the window for a category spending breakdown.
type SpendingPeriod string

const (
	// SpendingMonthly covers the current calendar month to date.
	SpendingMonthly SpendingPeriod = "monthly"
	// SpendingYearly covers the current calendar year to date.
	SpendingYearly SpendingPeriod = "yearly"
	// SpendingAll covers the full transaction history.
	SpendingAll SpendingPeriod = "all"
)

// CategorySpend is one category's summed amount within a window.
type CategorySpend struct {
	Category string
	Color    string
	Kind     CategoryKind
	Total    float64
}

// DailyTotal is one day's income and expense sums.
type DailyTotal struct {
	Date     time.Time
	Expenses float64
	Income   float64
}

// MonthlyReport aggregates one calendar month of ledger activity.
type MonthlyReport struct {
	Period      string
	Categories  []CategorySpend
	Daily       []DailyTotal
	Income      float64
	Expenses    float64
	Savings     float64
	SavingsRate float64
}

// Insights holds the rule-based textual analysis of recent activity.
// It is a plain decision table over summary statistics; nothing here is
// learned or inferred.
type Insights struct {
	SpendingHabits  []string
	Recommendations []string
	Warnings        []string
	Achievements    []string
}
