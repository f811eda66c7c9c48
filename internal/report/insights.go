package report

import (
	"context"
	"fmt"

	"github.com/1saman/personalfinancetracker/internal/model"
)

// Insights runs the decision table over the current balance summary and
// this month's category spending.
func (e *Engine) Insights(ctx context.Context) (*model.Insights, error) {
	summary, err := e.BalanceSummary(ctx)
	if err != nil {
		return nil, err
	}
	spending, err := e.CategorySpending(ctx, model.SpendingMonthly)
	if err != nil {
		return nil, err
	}
	insights := GenerateInsights(summary, spending)
	return &insights, nil
}

// GenerateInsights is a pure function of the balance summary and the
// monthly category spending. It is a fixed rule table over summary
// statistics; no inference or learned model is involved.
func GenerateInsights(summary *model.BalanceSummary, monthlySpending []model.CategorySpend) model.Insights {
	var insights model.Insights

	if summary.MonthlyExpenses > summary.MonthlyIncome {
		insights.Warnings = append(insights.Warnings,
			"You are spending more than you earn this month!")
		insights.Recommendations = append(insights.Recommendations,
			"Review your expenses and identify areas where you can cut back")
	}

	// Exactly one savings-rate rule fires when there is any income.
	if summary.MonthlyIncome > 0 {
		savingsRate := summary.MonthlySavings / summary.MonthlyIncome * 100
		switch {
		case savingsRate >= 20:
			insights.Achievements = append(insights.Achievements,
				fmt.Sprintf("Excellent! You are saving %.1f%% of your income", savingsRate))
		case savingsRate >= 10:
			insights.Achievements = append(insights.Achievements,
				fmt.Sprintf("Good work! You are saving %.1f%% of your income", savingsRate))
		default:
			insights.Recommendations = append(insights.Recommendations,
				fmt.Sprintf("Try to increase your savings rate (currently %.1f%%)", savingsRate))
		}
	}

	if top, ok := topExpense(monthlySpending); ok {
		insights.SpendingHabits = append(insights.SpendingHabits,
			fmt.Sprintf("Your largest expense category this month is %s ($%.2f)", top.Category, top.Total))
	}

	return insights
}

// topExpense returns the expense category with the largest total, if any
// expense categories appear in the window.
func topExpense(spending []model.CategorySpend) (model.CategorySpend, bool) {
	var top model.CategorySpend
	found := false
	for _, spend := range spending {
		if spend.Kind != model.KindExpense {
			continue
		}
		if !found || spend.Total > top.Total {
			top = spend
			found = true
		}
	}
	return top, found
}
