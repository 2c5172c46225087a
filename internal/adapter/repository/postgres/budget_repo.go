package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// budgetRepository implements domain.BudgetRepository
type budgetRepository struct {
	db *DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *DB) domain.BudgetRepository {
	return &budgetRepository{db: db}
}

// ListActive retrieves the user's active budgets
func (r *budgetRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, COALESCE(c.name, ''), b.ceiling, b.month, b.active
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.active = TRUE
		ORDER BY c.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		var budget domain.Budget
		var ceilingStr string

		err := rows.Scan(
			&budget.ID,
			&budget.UserID,
			&budget.CategoryID,
			&budget.CategoryName,
			&ceilingStr,
			&budget.Month,
			&budget.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}

		ceiling, err := decimal.NewFromString(ceilingStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ceiling: %w", err)
		}
		budget.Ceiling = ceiling

		budgets = append(budgets, &budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// Create creates a new budget
func (r *budgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category_id, ceiling, month, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		budget.ID,
		budget.UserID,
		budget.CategoryID,
		budget.Ceiling.String(),
		budget.Month,
		budget.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	return nil
}

// Delete removes a budget by id
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("budget %s not found", id)
	}

	return nil
}
