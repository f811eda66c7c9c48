package report

import (
	"testing"

	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGenerateInsights_Overspending(t *testing.T) {
	summary := &model.BalanceSummary{
		MonthlyIncome:   1000,
		MonthlyExpenses: 1200,
		MonthlySavings:  -200,
	}

	insights := GenerateInsights(summary, nil)

	assert.Contains(t, insights.Warnings, "You are spending more than you earn this month!")
	assert.Contains(t, insights.Recommendations, "Review your expenses and identify areas where you can cut back")
	assert.Empty(t, insights.Achievements)
}

func TestGenerateInsights_SavingsRate(t *testing.T) {
	tests := []struct {
		name             string
		income           float64
		savings          float64
		wantAchievements int
		wantContains     string
		inRecommendation bool
	}{
		{
			name:             "twenty percent or more is excellent",
			income:           1000,
			savings:          250,
			wantAchievements: 1,
			wantContains:     "Excellent! You are saving 25.0% of your income",
		},
		{
			name:             "exactly twenty percent still excellent",
			income:           1000,
			savings:          200,
			wantAchievements: 1,
			wantContains:     "Excellent! You are saving 20.0% of your income",
		},
		{
			name:             "ten to twenty percent is good",
			income:           1000,
			savings:          150,
			wantAchievements: 1,
			wantContains:     "Good work! You are saving 15.0% of your income",
		},
		{
			name:             "below ten percent gets a recommendation",
			income:           1000,
			savings:          50,
			wantContains:     "Try to increase your savings rate (currently 5.0%)",
			inRecommendation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := &model.BalanceSummary{
				MonthlyIncome:   tt.income,
				MonthlyExpenses: tt.income - tt.savings,
				MonthlySavings:  tt.savings,
			}

			insights := GenerateInsights(summary, nil)

			if tt.inRecommendation {
				assert.Contains(t, insights.Recommendations, tt.wantContains)
				assert.Empty(t, insights.Achievements)
			} else {
				assert.Len(t, insights.Achievements, tt.wantAchievements)
				assert.Contains(t, insights.Achievements, tt.wantContains)
			}
		})
	}
}

func TestGenerateInsights_NoIncomeSkipsSavingsRules(t *testing.T) {
	summary := &model.BalanceSummary{MonthlyIncome: 0, MonthlyExpenses: 0}

	insights := GenerateInsights(summary, nil)

	assert.Empty(t, insights.Achievements)
	assert.Empty(t, insights.Recommendations)
	assert.Empty(t, insights.Warnings)
}

func TestGenerateInsights_TopExpenseCategory(t *testing.T) {
	summary := &model.BalanceSummary{MonthlyIncome: 1000, MonthlyExpenses: 600, MonthlySavings: 400}
	spending := []model.CategorySpend{
		{Category: "Salary", Kind: model.KindIncome, Total: 1000},
		{Category: "Rent", Kind: model.KindExpense, Total: 450},
		{Category: "Food", Kind: model.KindExpense, Total: 150},
	}

	insights := GenerateInsights(summary, spending)

	// Income categories never count as the top expense.
	assert.Contains(t, insights.SpendingHabits, "Your largest expense category this month is Rent ($450.00)")
}

func TestGenerateInsights_NoExpensesNoHabit(t *testing.T) {
	summary := &model.BalanceSummary{MonthlyIncome: 1000, MonthlySavings: 1000}
	spending := []model.CategorySpend{
		{Category: "Salary", Kind: model.KindIncome, Total: 1000},
	}

	insights := GenerateInsights(summary, spending)

	assert.Empty(t, insights.SpendingHabits)
}
