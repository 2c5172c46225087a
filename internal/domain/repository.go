package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// ListByUser retrieves all accounts owned by a user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error)
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	// ListByUser retrieves all categories owned by a user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)

	// Create creates a new category. Used by the seeder for the fallback
	// category; user-defined categories are managed elsewhere.
	Create(ctx context.Context, category *Category) error
}

// TransactionRepository defines the interface for transaction persistence
// operations, including the aggregated reads the context fan-out needs
type TransactionRepository interface {
	// Create creates a new transaction
	Create(ctx context.Context, tx *Transaction) error

	// Delete removes a transaction by id (rollback path)
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateInstallmentSeries persists an installment purchase as one
	// logical write: the series and its N linked transaction records
	CreateInstallmentSeries(ctx context.Context, series *InstallmentSeries) error

	// DeleteInstallmentSeries removes a series and its linked records
	DeleteInstallmentSeries(ctx context.Context, seriesID uuid.UUID) error

	// ListRecent retrieves the newest transactions for a user, newest first
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Transaction, error)

	// ListCategoryHistory retrieves the trailing-window transactions used by
	// the analytics derivations, oldest first
	ListCategoryHistory(ctx context.Context, userID uuid.UUID, months int) ([]*Transaction, error)

	// GetPeriodIndicators retrieves the aggregated totals of one month
	GetPeriodIndicators(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*PeriodIndicators, error)

	// ListUpcomingScheduled retrieves scheduled movements due within the
	// horizon, soonest first
	ListUpcomingScheduled(ctx context.Context, userID uuid.UUID, horizonDays int) ([]*ScheduledTransaction, error)
}

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	// ListActive retrieves the user's active goals
	ListActive(ctx context.Context, userID uuid.UUID) ([]*Goal, error)

	// Create creates a new goal
	Create(ctx context.Context, goal *Goal) error

	// Delete removes a goal by id (rollback path)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository defines the interface for budget persistence operations
type BudgetRepository interface {
	// ListActive retrieves the user's active budgets
	ListActive(ctx context.Context, userID uuid.UUID) ([]*Budget, error)

	// Create creates a new budget
	Create(ctx context.Context, budget *Budget) error

	// Delete removes a budget by id (rollback path)
	Delete(ctx context.Context, id uuid.UUID) error
}
