package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

// ListActive retrieves the user's active goals
func (r *goalRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, saved_amount, deadline, active
		FROM goals
		WHERE user_id = $1 AND active = TRUE
		ORDER BY deadline ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var goal domain.Goal
		var targetStr, savedStr string

		err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Name,
			&targetStr,
			&savedStr,
			&goal.Deadline,
			&goal.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}

		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse target_amount: %w", err)
		}
		saved, err := decimal.NewFromString(savedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse saved_amount: %w", err)
		}
		goal.TargetAmount = target
		goal.SavedAmount = saved

		goals = append(goals, &goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return goals, nil
}

// Create creates a new goal
func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, saved_amount, deadline, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount.String(),
		goal.SavedAmount.String(),
		goal.Deadline,
		goal.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// Delete removes a goal by id
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s not found", id)
	}

	return nil
}
