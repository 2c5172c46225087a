package analytics

import (
	"sort"
	"time"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

const monthKeyLayout = "2006-01"

func monthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthTotalsOf aggregates the history slice into the totals of one calendar
// month. Used by the aggregation engine to derive the previous month's
// totals from the trailing history window.
func MonthTotalsOf(history []*domain.Transaction, month time.Time) domain.MonthTotals {
	key := monthKey(month)
	for _, entry := range monthlyTotals(history) {
		if entry.Key == key {
			return entry.Totals
		}
	}
	return domain.MonthTotals{}
}

// monthEntry pairs a month key with its aggregated totals
type monthEntry struct {
	Key    string
	Totals domain.MonthTotals
}

// monthlyTotals buckets the history by calendar month, oldest first.
// Transfers are skipped: they move money between the user's own accounts.
func monthlyTotals(history []*domain.Transaction) []monthEntry {
	byMonth := make(map[string]domain.MonthTotals)
	for _, tx := range history {
		key := monthKey(tx.Date)
		totals := byMonth[key]
		switch tx.Type {
		case domain.TransactionTypeReceita:
			totals.Income = totals.Income.Add(tx.Amount)
		case domain.TransactionTypeDespesa:
			totals.Expense = totals.Expense.Add(tx.Amount)
		default:
			continue
		}
		byMonth[key] = totals
	}

	entries := make([]monthEntry, 0, len(byMonth))
	for key, totals := range byMonth {
		entries = append(entries, monthEntry{Key: key, Totals: totals})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
