package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

var trendNow = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)

func TestComputeTrends_Crescente(t *testing.T) {
	categoryID := uuid.New()
	history := []*domain.Transaction{
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -2, 0), 1000),
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -1, 0), 1000),
		categoryExpense(categoryID, "Mercado", trendNow, 1500),
	}

	records := ComputeTrends(history, trendNow)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "Mercado", record.CategoryName)
	assert.True(t, decimal.NewFromInt(1000).Equal(record.MeanMonthlyAmount))
	assert.True(t, decimal.NewFromInt(1500).Equal(record.CurrentMonthAmount))
	assert.InDelta(t, 50.0, record.PercentDeviation, 0.001)
	assert.Equal(t, domain.TrendCrescente, record.Classification)
}

func TestComputeTrends_Decrescente(t *testing.T) {
	categoryID := uuid.New()
	history := []*domain.Transaction{
		categoryExpense(categoryID, "Lazer", trendNow.AddDate(0, -1, 0), 1000),
		categoryExpense(categoryID, "Lazer", trendNow, 500),
	}

	records := ComputeTrends(history, trendNow)
	require.Len(t, records, 1)
	assert.Equal(t, domain.TrendDecrescente, records[0].Classification)
}

func TestComputeTrends_EstavelWithinTenPercent(t *testing.T) {
	categoryID := uuid.New()
	history := []*domain.Transaction{
		categoryExpense(categoryID, "Transporte", trendNow.AddDate(0, -1, 0), 1000),
		categoryExpense(categoryID, "Transporte", trendNow, 1050),
	}

	records := ComputeTrends(history, trendNow)
	require.Len(t, records, 1)
	assert.Equal(t, domain.TrendEstavel, records[0].Classification)
}

func TestComputeTrends_SingleMonthProducesNoRecord(t *testing.T) {
	categoryID := uuid.New()
	history := []*domain.Transaction{
		categoryExpense(categoryID, "Mercado", trendNow, 100),
		categoryExpense(categoryID, "Mercado", trendNow, 200),
	}

	assert.Empty(t, ComputeTrends(history, trendNow))
}

func TestComputeTrends_IgnoresIncome(t *testing.T) {
	history := []*domain.Transaction{
		incomeOn(trendNow.AddDate(0, -1, 0), 5000),
		incomeOn(trendNow, 5000),
	}

	assert.Empty(t, ComputeTrends(history, trendNow))
}

func TestComputeTrends_TrailingWindowIsThreeMonths(t *testing.T) {
	categoryID := uuid.New()
	history := []*domain.Transaction{
		// five months ago should fall outside the window
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -5, 0), 100000),
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -3, 0), 1000),
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -2, 0), 1000),
		categoryExpense(categoryID, "Mercado", trendNow.AddDate(0, -1, 0), 1000),
		categoryExpense(categoryID, "Mercado", trendNow, 1000),
	}

	records := ComputeTrends(history, trendNow)
	require.Len(t, records, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(records[0].MeanMonthlyAmount),
		"mean must only cover the trailing three months, got %s", records[0].MeanMonthlyAmount)
	assert.Equal(t, domain.TrendEstavel, records[0].Classification)
}

func TestComputeTrends_SortedByAbsoluteDeviation(t *testing.T) {
	stableID, spikeID := uuid.New(), uuid.New()
	history := []*domain.Transaction{
		categoryExpense(stableID, "Transporte", trendNow.AddDate(0, -1, 0), 1000),
		categoryExpense(stableID, "Transporte", trendNow, 1020),
		categoryExpense(spikeID, "Lazer", trendNow.AddDate(0, -1, 0), 500),
		categoryExpense(spikeID, "Lazer", trendNow, 1500),
	}

	records := ComputeTrends(history, trendNow)
	require.Len(t, records, 2)
	assert.Equal(t, "Lazer", records[0].CategoryName, "largest anomaly first")
	assert.Greater(t, math.Abs(records[0].PercentDeviation), math.Abs(records[1].PercentDeviation))
}
