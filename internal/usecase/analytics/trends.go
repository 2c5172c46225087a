package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// trendWindowMonths is the trailing window the current month is compared
// against
const trendWindowMonths = 3

const (
	trendUpperPct = 10.0
	trendLowerPct = -10.0
)

// ComputeTrends classifies each spending category's current month against the
// mean of its trailing months. Categories need at least two monthly buckets
// of history; anything thinner produces no record. The result is sorted by
// absolute deviation descending, so the largest anomalies come first.
func ComputeTrends(history []*domain.Transaction, now time.Time) []domain.TrendRecord {
	type categoryBuckets struct {
		name    string
		byMonth map[string]decimal.Decimal
	}

	buckets := make(map[uuid.UUID]*categoryBuckets)
	var order []uuid.UUID // first-seen, keeps ties stable after sorting

	for _, tx := range history {
		if tx.Type != domain.TransactionTypeDespesa {
			continue
		}
		cb, exists := buckets[tx.CategoryID]
		if !exists {
			cb = &categoryBuckets{name: tx.CategoryName, byMonth: make(map[string]decimal.Decimal)}
			buckets[tx.CategoryID] = cb
			order = append(order, tx.CategoryID)
		}
		key := monthKey(tx.Date)
		cb.byMonth[key] = cb.byMonth[key].Add(tx.Amount)
	}

	currentKey := monthKey(now)
	records := make([]domain.TrendRecord, 0, len(order))

	for _, categoryID := range order {
		cb := buckets[categoryID]
		if len(cb.byMonth) < 2 {
			continue
		}

		// trailing months strictly before the current one, newest first
		var prior []string
		for key := range cb.byMonth {
			if key < currentKey {
				prior = append(prior, key)
			}
		}
		if len(prior) == 0 {
			continue
		}
		sort.Sort(sort.Reverse(sort.StringSlice(prior)))
		if len(prior) > trendWindowMonths {
			prior = prior[:trendWindowMonths]
		}

		sum := decimal.Zero
		for _, key := range prior {
			sum = sum.Add(cb.byMonth[key])
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(prior))))
		current := cb.byMonth[currentKey]

		deviation := variation(current, mean)

		records = append(records, domain.TrendRecord{
			CategoryID:         categoryID,
			CategoryName:       cb.name,
			MeanMonthlyAmount:  mean,
			CurrentMonthAmount: current,
			PercentDeviation:   deviation,
			Classification:     classifyTrend(deviation),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return math.Abs(records[i].PercentDeviation) > math.Abs(records[j].PercentDeviation)
	})
	return records
}

func classifyTrend(deviationPct float64) domain.TrendClassification {
	switch {
	case deviationPct > trendUpperPct:
		return domain.TrendCrescente
	case deviationPct < trendLowerPct:
		return domain.TrendDecrescente
	default:
		return domain.TrendEstavel
	}
}
