// Package contextbuilder implements the context aggregation engine: it fans
// out reads to the external financial store, derives analytics, and caches
// one immutable FinancialContext snapshot per user.
package contextbuilder

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/analytics"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/conversation"
)

// ErrStoreUnavailable is returned when every fan-out read fails; a partial
// context is served for anything less than total outage.
var ErrStoreUnavailable = errors.New("financial store unavailable")

const (
	defaultTTL            = 5 * time.Minute
	defaultFanoutTimeout  = 10 * time.Second
	defaultRecentLimit    = 20
	defaultHistoryMonths  = 6
	defaultScheduledDays  = 60
	defaultProjectionSpan = 3
)

// Options tunes the engine; zero values fall back to defaults
type Options struct {
	TTL                  time.Duration
	FanoutTimeout        time.Duration
	RecentLimit          int
	HistoryMonths        int
	ScheduledHorizonDays int
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.FanoutTimeout <= 0 {
		o.FanoutTimeout = defaultFanoutTimeout
	}
	if o.RecentLimit <= 0 {
		o.RecentLimit = defaultRecentLimit
	}
	if o.HistoryMonths <= 0 {
		o.HistoryMonths = defaultHistoryMonths
	}
	if o.ScheduledHorizonDays <= 0 {
		o.ScheduledHorizonDays = defaultScheduledDays
	}
	return o
}

type cacheEntry struct {
	fc      *domain.FinancialContext
	builtAt time.Time
}

// Service is the context aggregation engine. It exclusively owns the cache;
// it never owns the persisted records themselves.
type Service struct {
	accounts      domain.AccountRepository
	categories    domain.CategoryRepository
	transactions  domain.TransactionRepository
	goals         domain.GoalRepository
	budgets       domain.BudgetRepository
	conversations *conversation.Log

	opts Options

	mu    sync.RWMutex
	cache map[uuid.UUID]*cacheEntry
	gens  map[uuid.UUID]uint64
	group singleflight.Group

	now func() time.Time // injected for tests
}

// NewService creates a new context aggregation engine
func NewService(
	accounts domain.AccountRepository,
	categories domain.CategoryRepository,
	transactions domain.TransactionRepository,
	goals domain.GoalRepository,
	budgets domain.BudgetRepository,
	conversations *conversation.Log,
	opts Options,
) *Service {
	return &Service{
		accounts:      accounts,
		categories:    categories,
		transactions:  transactions,
		goals:         goals,
		budgets:       budgets,
		conversations: conversations,
		opts:          opts.withDefaults(),
		cache:         make(map[uuid.UUID]*cacheEntry),
		gens:          make(map[uuid.UUID]uint64),
		now:           time.Now,
	}
}

// BuildContext returns the user's financial context. A cached snapshot
// younger than the TTL is returned as-is with no store I/O. On a miss,
// concurrent callers for the same user coalesce onto a single in-flight
// build (single-flight) and all receive the same snapshot.
func (s *Service) BuildContext(ctx context.Context, userID uuid.UUID) (*domain.FinancialContext, error) {
	if fc := s.cached(userID); fc != nil {
		return fc, nil
	}

	v, err, _ := s.group.Do(userID.String(), func() (any, error) {
		// a flight that won the race may have populated the cache already
		if fc := s.cached(userID); fc != nil {
			return fc, nil
		}
		gen := s.generation(userID)
		fc, err := s.build(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.store(userID, fc, gen)
		return fc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.FinancialContext), nil
}

// Invalidate unconditionally evicts the user's cached context. Builds that
// start after this call never observe the pre-invalidation snapshot: the
// entry is dropped, the generation is bumped so a stale in-flight build
// cannot repopulate the cache, and the single-flight key is forgotten.
func (s *Service) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.gens[userID]++
	s.mu.Unlock()
	s.group.Forget(userID.String())
}

// SweepExpired drops cache entries older than the TTL. Called periodically
// by the janitor; correctness does not depend on it since reads check age.
func (s *Service) SweepExpired() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for userID, entry := range s.cache {
		if now.Sub(entry.builtAt) >= s.opts.TTL {
			delete(s.cache, userID)
			swept++
		}
	}
	return swept
}

func (s *Service) cached(userID uuid.UUID) *domain.FinancialContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[userID]
	if !ok || s.now().Sub(entry.builtAt) >= s.opts.TTL {
		return nil
	}
	return entry.fc
}

func (s *Service) generation(userID uuid.UUID) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[userID]
}

// store publishes a freshly built context unless an Invalidate happened
// after the build started
func (s *Service) store(userID uuid.UUID, fc *domain.FinancialContext, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[userID] != gen {
		return
	}
	s.cache[userID] = &cacheEntry{fc: fc, builtAt: fc.BuiltAt}
}

// fanout holds the raw results of the parallel store reads
type fanout struct {
	accounts   []*domain.Account
	categories []*domain.Category
	indicators *domain.PeriodIndicators
	recent     []*domain.Transaction
	history    []*domain.Transaction
	goals      []*domain.Goal
	budgets    []*domain.Budget
	scheduled  []*domain.ScheduledTransaction
}

func (s *Service) build(ctx context.Context, userID uuid.UUID) (*domain.FinancialContext, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FanoutTimeout)
	defer cancel()

	now := s.now()
	var out fanout
	failures := 0
	var failMu sync.Mutex
	var wg sync.WaitGroup

	// a failed section degrades to its zero value: a partial context is
	// preferable to no context
	section := func(name string, read func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := read(); err != nil {
				log.Printf("[WARN] context fan-out: %s read failed for user %s: %v", name, userID, err)
				failMu.Lock()
				failures++
				failMu.Unlock()
			}
		}()
	}

	section("accounts", func() (err error) {
		out.accounts, err = s.accounts.ListByUser(ctx, userID)
		return
	})
	section("categories", func() (err error) {
		out.categories, err = s.categories.ListByUser(ctx, userID)
		return
	})
	section("indicators", func() (err error) {
		out.indicators, err = s.transactions.GetPeriodIndicators(ctx, userID, now.Year(), now.Month())
		return
	})
	section("recent transactions", func() (err error) {
		out.recent, err = s.transactions.ListRecent(ctx, userID, s.opts.RecentLimit)
		return
	})
	section("category history", func() (err error) {
		out.history, err = s.transactions.ListCategoryHistory(ctx, userID, s.opts.HistoryMonths)
		return
	})
	section("goals", func() (err error) {
		out.goals, err = s.goals.ListActive(ctx, userID)
		return
	})
	section("budgets", func() (err error) {
		out.budgets, err = s.budgets.ListActive(ctx, userID)
		return
	})
	section("upcoming scheduled", func() (err error) {
		out.scheduled, err = s.transactions.ListUpcomingScheduled(ctx, userID, s.opts.ScheduledHorizonDays)
		return
	})

	wg.Wait()

	const sections = 8
	if failures == sections {
		return nil, ErrStoreUnavailable
	}

	return s.assemble(userID, now, &out), nil
}

func (s *Service) assemble(userID uuid.UUID, now time.Time, out *fanout) *domain.FinancialContext {
	patrimony := assemblePatrimony(out.accounts, out.scheduled)

	indicators := domain.PeriodIndicators{}
	if out.indicators != nil {
		indicators = *out.indicators
	}

	current := domain.MonthTotals{Income: indicators.Income, Expense: indicators.Expense}
	previous := analytics.MonthTotalsOf(out.history, now.AddDate(0, -1, 0))

	patterns := analytics.DetectSpendingPatterns(out.history)

	var turns []domain.ConversationTurn
	if s.conversations != nil {
		turns = s.conversations.Recent(userID)
	}

	return &domain.FinancialContext{
		UserID:    userID,
		BuiltAt:   now,
		Patrimony: patrimony,
		Indicators: domain.Indicators{
			MonthIncome:     indicators.Income,
			MonthExpense:    indicators.Expense,
			NetFlow:         indicators.NetFlow,
			Health:          analytics.ComputeHealthScore(patrimony, analytics.ReserveThreshold(out.history)),
			Trends:          analytics.ComputeTrends(out.history, now),
			MonthComparison: analytics.CompareMonths(current, previous),
		},
		History: domain.History{
			RecentTransactions:  out.recent,
			Patterns:            patterns,
			PreferredCategories: preferredCategories(out.categories, patterns),
		},
		Planning: domain.Planning{
			UpcomingScheduled: out.scheduled,
			ActiveGoals:       out.goals,
			ActiveBudgets:     out.budgets,
			Projections:       analytics.ProjectNextMonths(out.history, out.budgets, out.goals, now, defaultProjectionSpan),
		},
		Conversation: domain.Conversation{Turns: turns},
	}
}

func assemblePatrimony(accounts []*domain.Account, scheduled []*domain.ScheduledTransaction) domain.Patrimony {
	total := decimal.Zero
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		total = total.Add(account.Balance)
		balances = append(balances, domain.AccountBalance{
			AccountID: account.ID,
			Name:      account.Name,
			Balance:   account.Balance,
			IsDefault: account.IsDefault,
		})
	}

	projected := total
	for _, upcoming := range scheduled {
		switch upcoming.Type {
		case domain.TransactionTypeReceita:
			projected = projected.Add(upcoming.Amount)
		case domain.TransactionTypeDespesa:
			projected = projected.Sub(upcoming.Amount)
		}
	}

	return domain.Patrimony{
		TotalBalance:     total,
		ProjectedBalance: projected,
		Accounts:         balances,
	}
}

// preferredCategories merges the user's explicitly preferred categories with
// the most active ones detected from history, deduplicated, preference first
func preferredCategories(categories []*domain.Category, patterns domain.SpendingPatterns) []string {
	seen := make(map[string]bool)
	var preferred []string
	for _, category := range categories {
		if category.IsPreferred && !seen[category.Name] {
			seen[category.Name] = true
			preferred = append(preferred, category.Name)
		}
	}
	for _, name := range patterns.TopCategories {
		if !seen[name] {
			seen[name] = true
			preferred = append(preferred, name)
		}
	}
	return preferred
}
