package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// projectionSamples is how many trailing monthly totals feed the projection
// mean
const projectionSamples = 3

// ProjectNextMonths estimates income and expense for each of the next n
// calendar months as the mean of the latest available monthly totals (up to
// three; zero when there is no history). Active budgets are treated as
// recurring monthly ceilings: a month is flagged at risk when the projected
// expense exceeds the summed ceiling. Months with no ceiling are never at
// risk. GoalsDue sums the targets of goals whose deadline falls inside the
// projected month.
func ProjectNextMonths(
	history []*domain.Transaction,
	budgets []*domain.Budget,
	goals []*domain.Goal,
	now time.Time,
	n int,
) []domain.MonthProjection {
	totals := monthlyTotals(history)
	if len(totals) > projectionSamples {
		totals = totals[len(totals)-projectionSamples:]
	}

	projectedIncome := decimal.Zero
	projectedExpense := decimal.Zero
	if len(totals) > 0 {
		for _, entry := range totals {
			projectedIncome = projectedIncome.Add(entry.Totals.Income)
			projectedExpense = projectedExpense.Add(entry.Totals.Expense)
		}
		samples := decimal.NewFromInt(int64(len(totals)))
		projectedIncome = projectedIncome.Div(samples)
		projectedExpense = projectedExpense.Div(samples)
	}

	hasCeiling := false
	ceiling := decimal.Zero
	for _, budget := range budgets {
		if !budget.Active {
			continue
		}
		hasCeiling = true
		ceiling = ceiling.Add(budget.Ceiling)
	}

	projections := make([]domain.MonthProjection, 0, n)
	for i := 1; i <= n; i++ {
		month := startOfMonth(now.AddDate(0, i, 0))

		goalsDue := decimal.Zero
		for _, goal := range goals {
			if !goal.Active {
				continue
			}
			if monthKey(goal.Deadline) == monthKey(month) {
				goalsDue = goalsDue.Add(goal.TargetAmount)
			}
		}

		projections = append(projections, domain.MonthProjection{
			Month:            month,
			ProjectedIncome:  projectedIncome,
			ProjectedExpense: projectedExpense,
			BudgetAtRisk:     hasCeiling && projectedExpense.GreaterThan(ceiling),
			GoalsDue:         goalsDue,
		})
	}
	return projections
}
