package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

var projNow = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)

func TestProjectNextMonths_MeanOfLatestThree(t *testing.T) {
	history := []*domain.Transaction{
		incomeOn(projNow.AddDate(0, -3, 0), 3000),
		expenseOn(projNow.AddDate(0, -3, 0), 1000),
		incomeOn(projNow.AddDate(0, -2, 0), 3000),
		expenseOn(projNow.AddDate(0, -2, 0), 2000),
		incomeOn(projNow.AddDate(0, -1, 0), 3000),
		expenseOn(projNow.AddDate(0, -1, 0), 3000),
	}

	projections := ProjectNextMonths(history, nil, nil, projNow, 3)
	require.Len(t, projections, 3)

	for i, projection := range projections {
		expectedMonth := time.Date(2025, time.July+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expectedMonth, projection.Month)
		assert.True(t, decimal.NewFromInt(3000).Equal(projection.ProjectedIncome))
		assert.True(t, decimal.NewFromInt(2000).Equal(projection.ProjectedExpense))
		assert.False(t, projection.BudgetAtRisk, "no ceiling configured means never at risk")
	}
}

func TestProjectNextMonths_FewerThanThreeMonths(t *testing.T) {
	history := []*domain.Transaction{
		expenseOn(projNow.AddDate(0, -1, 0), 900),
	}

	projections := ProjectNextMonths(history, nil, nil, projNow, 1)
	require.Len(t, projections, 1)
	assert.True(t, decimal.NewFromInt(900).Equal(projections[0].ProjectedExpense))
	assert.True(t, projections[0].ProjectedIncome.IsZero())
}

func TestProjectNextMonths_EmptyHistory(t *testing.T) {
	projections := ProjectNextMonths(nil, nil, nil, projNow, 2)
	require.Len(t, projections, 2)
	assert.True(t, projections[0].ProjectedIncome.IsZero())
	assert.True(t, projections[0].ProjectedExpense.IsZero())
}

func TestProjectNextMonths_BudgetAtRisk(t *testing.T) {
	history := []*domain.Transaction{
		expenseOn(projNow.AddDate(0, -1, 0), 2500),
	}
	budgets := []*domain.Budget{
		{ID: uuid.New(), Ceiling: decimal.NewFromInt(2000), Active: true},
	}

	projections := ProjectNextMonths(history, budgets, nil, projNow, 1)
	require.Len(t, projections, 1)
	assert.True(t, projections[0].BudgetAtRisk)
}

func TestProjectNextMonths_InactiveBudgetIgnored(t *testing.T) {
	history := []*domain.Transaction{
		expenseOn(projNow.AddDate(0, -1, 0), 2500),
	}
	budgets := []*domain.Budget{
		{ID: uuid.New(), Ceiling: decimal.NewFromInt(2000), Active: false},
	}

	projections := ProjectNextMonths(history, budgets, nil, projNow, 1)
	require.Len(t, projections, 1)
	assert.False(t, projections[0].BudgetAtRisk)
}

func TestProjectNextMonths_GoalsDueInMonth(t *testing.T) {
	goals := []*domain.Goal{
		{
			ID:           uuid.New(),
			Name:         "Viagem",
			TargetAmount: decimal.NewFromInt(4000),
			Deadline:     time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC),
			Active:       true,
		},
		{
			ID:           uuid.New(),
			Name:         "Notebook",
			TargetAmount: decimal.NewFromInt(6000),
			Deadline:     time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			Active:       true,
		},
	}

	projections := ProjectNextMonths(nil, nil, goals, projNow, 3)
	require.Len(t, projections, 3)
	assert.True(t, projections[0].GoalsDue.IsZero(), "july has no goal due")
	assert.True(t, decimal.NewFromInt(4000).Equal(projections[1].GoalsDue), "august sums the travel goal")
	assert.True(t, projections[2].GoalsDue.IsZero(), "september has no goal due")
}
