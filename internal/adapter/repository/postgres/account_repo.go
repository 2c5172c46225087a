package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// ListByUser retrieves all accounts owned by a user
func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	query := `
		SELECT id, user_id, name, type, balance, is_default
		FROM accounts
		WHERE user_id = $1
		ORDER BY is_default DESC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		var balanceStr string

		err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Name,
			&account.Type,
			&balanceStr,
			&account.IsDefault,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		balance, err := decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse balance: %w", err)
		}
		account.Balance = balance

		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
