package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// patternMinSamples is the minimum number of transactions a category needs
// before a pattern is derived for it
const patternMinSamples = 3

// topCategoryLimit bounds the preferred-category list
const topCategoryLimit = 5

// DetectSpendingPatterns summarizes spending habits per category: mean
// amount, most frequent weekday (from the transaction date) and most
// frequent hour of day (from the creation timestamp, which reflects when the
// user actually records movements). Categories with fewer than three
// transactions are skipped.
func DetectSpendingPatterns(history []*domain.Transaction) domain.SpendingPatterns {
	type categorySamples struct {
		name     string
		total    decimal.Decimal
		weekdays []time.Weekday
		hours    []int
	}

	samples := make(map[uuid.UUID]*categorySamples)
	var order []uuid.UUID
	hourly := make(map[int]int)

	for _, tx := range history {
		if tx.Type != domain.TransactionTypeDespesa {
			continue
		}
		cs, exists := samples[tx.CategoryID]
		if !exists {
			cs = &categorySamples{name: tx.CategoryName}
			samples[tx.CategoryID] = cs
			order = append(order, tx.CategoryID)
		}
		cs.total = cs.total.Add(tx.Amount)
		cs.weekdays = append(cs.weekdays, tx.Date.Weekday())
		cs.hours = append(cs.hours, tx.CreatedAt.Hour())
		hourly[tx.CreatedAt.Hour()]++
	}

	perCategory := make(map[uuid.UUID]domain.CategoryPattern)
	var ranked []domain.CategoryPattern

	for _, categoryID := range order {
		cs := samples[categoryID]
		count := len(cs.weekdays)
		if count < patternMinSamples {
			continue
		}

		topWeekday, _ := mode(cs.weekdays)
		topHour, _ := mode(cs.hours)

		pattern := domain.CategoryPattern{
			CategoryID:   categoryID,
			CategoryName: cs.name,
			Count:        count,
			MeanAmount:   cs.total.Div(decimal.NewFromInt(int64(count))),
			TopWeekday:   topWeekday,
			TopHour:      topHour,
		}
		perCategory[categoryID] = pattern
		ranked = append(ranked, pattern)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	top := make([]string, 0, topCategoryLimit)
	for _, pattern := range ranked {
		if len(top) == topCategoryLimit {
			break
		}
		top = append(top, pattern.CategoryName)
	}

	return domain.SpendingPatterns{
		PerCategory:        perCategory,
		TopCategories:      top,
		HourlyDistribution: hourly,
	}
}
