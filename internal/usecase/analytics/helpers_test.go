package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

func expenseOn(date time.Time, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.New(),
		Type:      domain.TransactionTypeDespesa,
		Amount:    decimal.NewFromInt(amount),
		Date:      date,
		CreatedAt: date,
	}
}

func incomeOn(date time.Time, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.New(),
		Type:      domain.TransactionTypeReceita,
		Amount:    decimal.NewFromInt(amount),
		Date:      date,
		CreatedAt: date,
	}
}

func categoryExpense(categoryID uuid.UUID, name string, date time.Time, amount int64) *domain.Transaction {
	tx := expenseOn(date, amount)
	tx.CategoryID = categoryID
	tx.CategoryName = name
	return tx
}
