package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the nature of a transaction
type TransactionType string

const (
	TransactionTypeReceita       TransactionType = "RECEITA"
	TransactionTypeDespesa       TransactionType = "DESPESA"
	TransactionTypeTransferencia TransactionType = "TRANSFERENCIA"
)

// Transaction represents a single financial movement in the external store.
// Amount is an ABSOLUTE VALUE (always positive); Type carries the direction.
type Transaction struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	AccountID            uuid.UUID
	CategoryID           uuid.UUID
	DestinationAccountID *uuid.UUID // NOT NULL only for TRANSFERENCIA
	Type                 TransactionType
	Amount               decimal.Decimal
	Description          string
	CategoryName         string
	Date                 time.Time // when the movement happened
	CreatedAt            time.Time // when the record was entered
	SeriesID             *uuid.UUID
	InstallmentNo        int
}

// Validate ensures the transaction adheres to domain rules
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction amount must be positive (absolute value)")
	}
	switch t.Type {
	case TransactionTypeReceita, TransactionTypeDespesa:
		if t.DestinationAccountID != nil {
			return errors.New("destination account is only valid for transfers")
		}
	case TransactionTypeTransferencia:
		if t.DestinationAccountID == nil {
			return errors.New("transfer must have a destination account")
		}
		if *t.DestinationAccountID == t.AccountID {
			return errors.New("transfer source and destination must differ")
		}
	default:
		return errors.New("transaction type must be RECEITA, DESPESA or TRANSFERENCIA")
	}
	return nil
}

// InstallmentItem is one installment of a series
type InstallmentItem struct {
	No      int
	Amount  decimal.Decimal
	DueDate time.Time
}

// InstallmentSeries represents an installment purchase persisted as one
// logical write: N linked transaction records sharing a total.
type InstallmentSeries struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Total       decimal.Decimal
	Items       []InstallmentItem
	CreatedAt   time.Time
}

// Validate ensures the series adheres to domain rules.
// CRITICAL: the sum of the item amounts must equal Total exactly.
func (s *InstallmentSeries) Validate() error {
	if s.Total.LessThanOrEqual(decimal.Zero) {
		return errors.New("series total must be positive")
	}
	if len(s.Items) < 2 {
		return errors.New("series must have at least two installments")
	}
	sum := decimal.Zero
	for _, item := range s.Items {
		if item.Amount.LessThanOrEqual(decimal.Zero) {
			return errors.New("installment amount must be positive")
		}
		sum = sum.Add(item.Amount)
	}
	if !sum.Equal(s.Total) {
		return errors.New("sum of installment amounts must equal the series total")
	}
	return nil
}

// ScheduledTransaction represents an upcoming movement generated from a
// recurring-transaction definition in the external store
type ScheduledTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
	DueDate     time.Time
}

// PeriodIndicators holds the aggregated totals of one calendar month
type PeriodIndicators struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	NetFlow decimal.Decimal
}
