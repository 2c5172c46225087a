package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// CompareMonths computes the percentage deltas between two months, applied
// independently to income, expense and savings (income minus expense).
func CompareMonths(current, previous domain.MonthTotals) domain.MonthComparison {
	return domain.MonthComparison{
		Current:          current,
		Previous:         previous,
		IncomeChangePct:  variation(current.Income, previous.Income),
		ExpenseChangePct: variation(current.Expense, previous.Expense),
		SavingsChangePct: variation(current.Savings(), previous.Savings()),
	}
}

// variation returns the percentage change from anterior to atual. A zero base
// yields 100% when atual is positive and 0% otherwise, so there is never a
// division by zero.
func variation(atual, anterior decimal.Decimal) float64 {
	if anterior.IsZero() {
		if atual.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}
	pct := atual.Sub(anterior).Div(anterior.Abs()).Mul(decimal.NewFromInt(100))
	return pct.InexactFloat64()
}
