package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

func patrimonyWith(balance int64) domain.Patrimony {
	return domain.Patrimony{TotalBalance: decimal.NewFromInt(balance)}
}

func TestComputeHealthScore_PositiveBalanceAboveReserve(t *testing.T) {
	score := ComputeHealthScore(patrimonyWith(10000), decimal.NewFromInt(6000))

	// 50 + 20 + 15
	assert.Equal(t, 85, score.Score)
	assert.Equal(t, domain.HealthExcelente, score.Level)
	assert.Len(t, score.Factors, 2)
	assert.Empty(t, score.Recommendations)
}

func TestComputeHealthScore_PositiveBalanceBelowReserve(t *testing.T) {
	score := ComputeHealthScore(patrimonyWith(1000), decimal.NewFromInt(6000))

	// 50 + 20, reserve bonus does not fire
	assert.Equal(t, 70, score.Score)
	assert.Equal(t, domain.HealthBoa, score.Level)
	assert.NotEmpty(t, score.Recommendations, "below-reserve factor carries a recommendation")
}

func TestComputeHealthScore_NonPositiveBalance(t *testing.T) {
	score := ComputeHealthScore(patrimonyWith(0), decimal.Zero)

	// 50 - 30
	assert.Equal(t, 20, score.Score)
	assert.Equal(t, domain.HealthPreocupante, score.Level)
	assert.Len(t, score.Recommendations, 2)
}

func TestComputeHealthScore_MonotonicInBalance(t *testing.T) {
	threshold := decimal.NewFromInt(5000)

	previous := -1
	for _, balance := range []int64{-1000, 0, 1, 4999, 5000, 5001, 100000} {
		score := ComputeHealthScore(patrimonyWith(balance), threshold)
		assert.GreaterOrEqual(t, score.Score, previous,
			"score must never decrease as balance grows (balance=%d)", balance)
		previous = score.Score
	}
}

func TestComputeHealthScore_ClampedToRange(t *testing.T) {
	low := ComputeHealthScore(patrimonyWith(-1), decimal.NewFromInt(100))
	high := ComputeHealthScore(patrimonyWith(1000000), decimal.Zero)

	assert.GreaterOrEqual(t, low.Score, 0)
	assert.LessOrEqual(t, high.Score, 100)
}

func TestReserveThreshold_SixTimesMeanMonthlyExpense(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	history := []*domain.Transaction{
		expenseOn(now.AddDate(0, -2, 0), 1000),
		expenseOn(now.AddDate(0, -1, 0), 2000),
	}

	threshold := ReserveThreshold(history)
	assert.True(t, decimal.NewFromInt(9000).Equal(threshold), "got %s", threshold)
}

func TestReserveThreshold_NoHistory(t *testing.T) {
	assert.True(t, ReserveThreshold(nil).IsZero())
}
