package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions
			(id, user_id, account_id, category_id, destination_account_id,
			 type, amount, description, date, created_at, series_id, installment_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		tx.AccountID,
		tx.CategoryID,
		tx.DestinationAccountID,
		string(tx.Type),
		tx.Amount.String(),
		tx.Description,
		tx.Date,
		tx.CreatedAt,
		tx.SeriesID,
		tx.InstallmentNo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// Delete removes a transaction by id
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}

	return nil
}

// CreateInstallmentSeries persists the series header and its N linked
// transaction records inside one database transaction, so a partial write
// never becomes visible
func (r *transactionRepository) CreateInstallmentSeries(ctx context.Context, series *domain.InstallmentSeries) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertSeriesQuery := `
		INSERT INTO installment_series (id, user_id, account_id, category_id, description, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = dbTx.ExecContext(ctx, insertSeriesQuery,
		series.ID,
		series.UserID,
		series.AccountID,
		series.CategoryID,
		series.Description,
		series.Total.String(),
		series.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert installment series: %w", err)
	}

	insertItemQuery := `
		INSERT INTO transactions
			(id, user_id, account_id, category_id, type, amount, description, date, created_at, series_id, installment_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, item := range series.Items {
		_, err = dbTx.ExecContext(ctx, insertItemQuery,
			uuid.New(),
			series.UserID,
			series.AccountID,
			series.CategoryID,
			string(domain.TransactionTypeDespesa),
			item.Amount.String(),
			fmt.Sprintf("%s (%d/%d)", series.Description, item.No, len(series.Items)),
			item.DueDate,
			series.CreatedAt,
			series.ID,
			item.No,
		)
		if err != nil {
			return fmt.Errorf("failed to insert installment %d: %w", item.No, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit installment series: %w", err)
	}

	return nil
}

// DeleteInstallmentSeries removes a series and all its linked records
func (r *transactionRepository) DeleteInstallmentSeries(ctx context.Context, seriesID uuid.UUID) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE series_id = $1`, seriesID); err != nil {
		return fmt.Errorf("failed to delete series transactions: %w", err)
	}

	result, err := dbTx.ExecContext(ctx, `DELETE FROM installment_series WHERE id = $1`, seriesID)
	if err != nil {
		return fmt.Errorf("failed to delete installment series: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("installment series %s not found", seriesID)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit series deletion: %w", err)
	}

	return nil
}

// ListRecent retrieves the newest transactions for a user, newest first
func (r *transactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.account_id, t.category_id, t.destination_account_id,
		       t.type, t.amount, t.description, COALESCE(c.name, ''), t.date, t.created_at,
		       t.series_id, t.installment_no
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListCategoryHistory retrieves the trailing-window transactions, oldest first
func (r *transactionRepository) ListCategoryHistory(ctx context.Context, userID uuid.UUID, months int) ([]*domain.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.account_id, t.category_id, t.destination_account_id,
		       t.type, t.amount, t.description, COALESCE(c.name, ''), t.date, t.created_at,
		       t.series_id, t.installment_no
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND t.date >= date_trunc('month', now()) - ($2 * interval '1 month')
		ORDER BY t.date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query category history: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetPeriodIndicators retrieves the aggregated totals of one calendar month.
// Transfers move money between the user's own accounts and count on neither
// side.
func (r *transactionRepository) GetPeriodIndicators(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*domain.PeriodIndicators, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'RECEITA'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'DESPESA'), 0)
		FROM transactions
		WHERE user_id = $1
		  AND date >= $2
		  AND date < $3
	`

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var incomeStr, expenseStr string
	err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&incomeStr, &expenseStr)
	if err != nil {
		return nil, fmt.Errorf("failed to query period indicators: %w", err)
	}

	income, err := decimal.NewFromString(incomeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse income total: %w", err)
	}
	expense, err := decimal.NewFromString(expenseStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expense total: %w", err)
	}

	return &domain.PeriodIndicators{
		Income:  income,
		Expense: expense,
		NetFlow: income.Sub(expense),
	}, nil
}

// ListUpcomingScheduled retrieves scheduled movements due within the horizon,
// soonest first
func (r *transactionRepository) ListUpcomingScheduled(ctx context.Context, userID uuid.UUID, horizonDays int) ([]*domain.ScheduledTransaction, error) {
	query := `
		SELECT id, user_id, description, type, amount, due_date
		FROM scheduled_transactions
		WHERE user_id = $1
		  AND due_date >= now()
		  AND due_date < now() + ($2 * interval '1 day')
		ORDER BY due_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled transactions: %w", err)
	}
	defer rows.Close()

	var scheduled []*domain.ScheduledTransaction
	for rows.Next() {
		var entry domain.ScheduledTransaction
		var amountStr string

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Description,
			&entry.Type,
			&amountStr,
			&entry.DueDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled transaction: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scheduled amount: %w", err)
		}
		entry.Amount = amount

		scheduled = append(scheduled, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled transactions: %w", err)
	}

	return scheduled, nil
}

func scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	var tx domain.Transaction
	var amountStr string
	var destinationID uuid.NullUUID
	var seriesID uuid.NullUUID

	err := rows.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.AccountID,
		&tx.CategoryID,
		&destinationID,
		&tx.Type,
		&amountStr,
		&tx.Description,
		&tx.CategoryName,
		&tx.Date,
		&tx.CreatedAt,
		&seriesID,
		&tx.InstallmentNo,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	tx.Amount = amount
	if destinationID.Valid {
		id := destinationID.UUID
		tx.DestinationAccountID = &id
	}
	if seriesID.Valid {
		id := seriesID.UUID
		tx.SeriesID = &id
	}

	return &tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
