package contextbuilder

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// searchScanLimit bounds how many recent transactions a free-text lookup
// scans
const searchScanLimit = 100

// SearchRelevant performs a best-effort, case-insensitive substring lookup
// across the user's transactions, accounts, categories, goals and budgets.
// This path is advisory, not mutating: internal failures degrade to empty
// collections, never an error.
func (s *Service) SearchRelevant(ctx context.Context, userID uuid.UUID, query string) domain.RelevantData {
	result := domain.RelevantData{
		Transactions: []*domain.Transaction{},
		Accounts:     []*domain.Account{},
		Categories:   []*domain.Category{},
		Goals:        []*domain.Goal{},
		Budgets:      []*domain.Budget{},
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return result
	}

	if transactions, err := s.transactions.ListRecent(ctx, userID, searchScanLimit); err != nil {
		log.Printf("[WARN] search: transactions read failed for user %s: %v", userID, err)
	} else {
		for _, tx := range transactions {
			if matches(needle, tx.Description, tx.CategoryName) {
				result.Transactions = append(result.Transactions, tx)
			}
		}
	}

	if accounts, err := s.accounts.ListByUser(ctx, userID); err != nil {
		log.Printf("[WARN] search: accounts read failed for user %s: %v", userID, err)
	} else {
		for _, account := range accounts {
			if matches(needle, account.Name) {
				result.Accounts = append(result.Accounts, account)
			}
		}
	}

	if categories, err := s.categories.ListByUser(ctx, userID); err != nil {
		log.Printf("[WARN] search: categories read failed for user %s: %v", userID, err)
	} else {
		for _, category := range categories {
			if matches(needle, category.Name) {
				result.Categories = append(result.Categories, category)
			}
		}
	}

	if goals, err := s.goals.ListActive(ctx, userID); err != nil {
		log.Printf("[WARN] search: goals read failed for user %s: %v", userID, err)
	} else {
		for _, goal := range goals {
			if matches(needle, goal.Name) {
				result.Goals = append(result.Goals, goal)
			}
		}
	}

	if budgets, err := s.budgets.ListActive(ctx, userID); err != nil {
		log.Printf("[WARN] search: budgets read failed for user %s: %v", userID, err)
	} else {
		for _, budget := range budgets {
			if matches(needle, budget.CategoryName) {
				result.Budgets = append(result.Budgets, budget)
			}
		}
	}

	return result
}

func matches(needle string, haystacks ...string) bool {
	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}
