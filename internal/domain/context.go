package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrendClassification labels a category's deviation from its recent mean
type TrendClassification string

const (
	TrendCrescente   TrendClassification = "crescente"
	TrendDecrescente TrendClassification = "decrescente"
	TrendEstavel     TrendClassification = "estavel"
)

// TrendRecord describes one category's current month against its
// trailing-3-month mean
type TrendRecord struct {
	CategoryID         uuid.UUID
	CategoryName       string
	MeanMonthlyAmount  decimal.Decimal
	CurrentMonthAmount decimal.Decimal
	PercentDeviation   float64
	Classification     TrendClassification
}

// HealthLevel is the qualitative band of a health score
type HealthLevel string

const (
	HealthExcelente   HealthLevel = "excelente"
	HealthBoa         HealthLevel = "boa"
	HealthModerada    HealthLevel = "moderada"
	HealthPreocupante HealthLevel = "preocupante"
)

// HealthScore is a 0-100 heuristic summary of the user's financial standing
type HealthScore struct {
	Score           int
	Level           HealthLevel
	Factors         []string
	Recommendations []string
}

// MonthTotals holds the income/expense totals of one calendar month
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Savings returns income minus expense
func (m MonthTotals) Savings() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// MonthComparison compares the current month against the previous one.
// Percentages follow the variation rule: a zero base yields 100% when the
// current value is positive and 0% otherwise.
type MonthComparison struct {
	Current          MonthTotals
	Previous         MonthTotals
	IncomeChangePct  float64
	ExpenseChangePct float64
	SavingsChangePct float64
}

// MonthProjection is a short-horizon estimate for one upcoming month
type MonthProjection struct {
	Month            time.Time // first day of the projected month
	ProjectedIncome  decimal.Decimal
	ProjectedExpense decimal.Decimal
	BudgetAtRisk     bool
	GoalsDue         decimal.Decimal
}

// CategoryPattern summarizes spending habits for one category
type CategoryPattern struct {
	CategoryID   uuid.UUID
	CategoryName string
	Count        int
	MeanAmount   decimal.Decimal
	TopWeekday   time.Weekday // mode of the transaction date
	TopHour      int          // mode of the creation timestamp hour
}

// SpendingPatterns aggregates per-category habits across the history window
type SpendingPatterns struct {
	PerCategory        map[uuid.UUID]CategoryPattern
	TopCategories      []string
	HourlyDistribution map[int]int
}

// AccountBalance is the per-account slice of the patrimony section
type AccountBalance struct {
	AccountID uuid.UUID
	Name      string
	Balance   decimal.Decimal
	IsDefault bool
}

// Patrimony is the balance section of the context
type Patrimony struct {
	TotalBalance     decimal.Decimal
	ProjectedBalance decimal.Decimal // total plus net of upcoming scheduled movements
	Accounts         []AccountBalance
}

// Indicators is the current-month analytics section of the context
type Indicators struct {
	MonthIncome     decimal.Decimal
	MonthExpense    decimal.Decimal
	NetFlow         decimal.Decimal
	Health          HealthScore
	Trends          []TrendRecord
	MonthComparison MonthComparison
}

// History is the recent-activity section of the context
type History struct {
	RecentTransactions  []*Transaction
	Patterns            SpendingPatterns
	PreferredCategories []string
}

// Planning is the forward-looking section of the context
type Planning struct {
	UpcomingScheduled []*ScheduledTransaction
	ActiveGoals       []*Goal
	ActiveBudgets     []*Budget
	Projections       []MonthProjection
}

// ConversationTurn is one prior interaction with the copilot
type ConversationTurn struct {
	Intent        Intent
	UserText      string
	ResultMessage string
	Success       bool
	At            time.Time
}

// Conversation is the short-term memory section of the context,
// recency-ordered (newest first) and bounded
type Conversation struct {
	Turns []ConversationTurn
}

// FinancialContext is the aggregate snapshot of one user's financial state.
// It is immutable once built: consumers never mutate it in place, any change
// requires rebuilding through the aggregation engine.
type FinancialContext struct {
	UserID       uuid.UUID
	BuiltAt      time.Time
	Patrimony    Patrimony
	Indicators   Indicators
	History      History
	Planning     Planning
	Conversation Conversation
}

// RelevantData is the best-effort free-text lookup result for advisory
// "ask about X" features. Collections are empty, never nil, on no match.
type RelevantData struct {
	Transactions []*Transaction
	Accounts     []*Account
	Categories   []*Category
	Goals        []*Goal
	Budgets      []*Budget
}
