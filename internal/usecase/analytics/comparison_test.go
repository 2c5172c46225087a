package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

func totals(income, expense int64) domain.MonthTotals {
	return domain.MonthTotals{
		Income:  decimal.NewFromInt(income),
		Expense: decimal.NewFromInt(expense),
	}
}

func TestCompareMonths_BothZero(t *testing.T) {
	cmp := CompareMonths(totals(0, 0), totals(0, 0))

	assert.Equal(t, 0.0, cmp.IncomeChangePct)
	assert.Equal(t, 0.0, cmp.ExpenseChangePct)
	assert.Equal(t, 0.0, cmp.SavingsChangePct)
}

func TestCompareMonths_ZeroBase(t *testing.T) {
	cmp := CompareMonths(totals(100, 0), totals(0, 0))

	assert.Equal(t, 100.0, cmp.IncomeChangePct)
	assert.Equal(t, 0.0, cmp.ExpenseChangePct)
	assert.Equal(t, 100.0, cmp.SavingsChangePct)
}

func TestCompareMonths_RegularVariation(t *testing.T) {
	cmp := CompareMonths(totals(3000, 1500), totals(2000, 2000))

	assert.InDelta(t, 50.0, cmp.IncomeChangePct, 0.001)
	assert.InDelta(t, -25.0, cmp.ExpenseChangePct, 0.001)
}

func TestCompareMonths_NegativeBaseUsesAbsolute(t *testing.T) {
	// previous savings -1000, current savings -500: improvement of 50%
	cmp := CompareMonths(totals(0, 500), totals(0, 1000))

	assert.InDelta(t, 50.0, cmp.SavingsChangePct, 0.001)
}
