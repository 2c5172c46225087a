package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListByUser retrieves the user's categories plus the system categories
// (rows with a NULL user_id). Listing with uuid.Nil returns only the system
// categories, which is what the seeder checks against.
func (r *categoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	query := `
		SELECT id, user_id, name, kind, is_preferred
		FROM categories
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY is_preferred DESC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, nullableUUID(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		var ownerID uuid.NullUUID

		err := rows.Scan(
			&category.ID,
			&ownerID,
			&category.Name,
			&category.Kind,
			&category.IsPreferred,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if ownerID.Valid {
			category.UserID = ownerID.UUID
		}

		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, user_id, name, kind, is_preferred)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		category.ID,
		nullableUUID(category.UserID),
		category.Name,
		string(category.Kind),
		category.IsPreferred,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// nullableUUID maps uuid.Nil to a SQL NULL so system rows carry no owner
func nullableUUID(id uuid.UUID) sql.NullString {
	if id == uuid.Nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}
