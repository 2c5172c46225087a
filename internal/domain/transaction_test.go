package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate_ValidExpense(t *testing.T) {
	tx := &Transaction{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		AccountID: uuid.New(),
		Type:      TransactionTypeDespesa,
		Amount:    decimal.NewFromInt(80),
		Date:      time.Now(),
	}

	assert.NoError(t, tx.Validate())
}

func TestTransactionValidate_NonPositiveAmount(t *testing.T) {
	tx := &Transaction{
		Type:   TransactionTypeDespesa,
		Amount: decimal.Zero,
	}

	err := tx.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestTransactionValidate_TransferNeedsDestination(t *testing.T) {
	tx := &Transaction{
		Type:   TransactionTypeTransferencia,
		Amount: decimal.NewFromInt(10),
	}

	assert.Error(t, tx.Validate())

	accountID := uuid.New()
	tx.AccountID = accountID
	tx.DestinationAccountID = &accountID
	assert.Error(t, tx.Validate(), "source and destination must differ")

	destID := uuid.New()
	tx.DestinationAccountID = &destID
	assert.NoError(t, tx.Validate())
}

func TestTransactionValidate_DestinationOnlyForTransfers(t *testing.T) {
	destID := uuid.New()
	tx := &Transaction{
		Type:                 TransactionTypeReceita,
		Amount:               decimal.NewFromInt(10),
		DestinationAccountID: &destID,
	}

	assert.Error(t, tx.Validate())
}

func TestInstallmentSeriesValidate_SumMustMatchTotal(t *testing.T) {
	series := &InstallmentSeries{
		ID:    uuid.New(),
		Total: decimal.NewFromInt(1200),
		Items: []InstallmentItem{
			{No: 1, Amount: decimal.NewFromInt(600)},
			{No: 2, Amount: decimal.NewFromInt(500)},
		},
	}

	err := series.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "equal the series total")

	series.Items[1].Amount = decimal.NewFromInt(600)
	assert.NoError(t, series.Validate())
}

func TestInstallmentSeriesValidate_NeedsTwoInstallments(t *testing.T) {
	series := &InstallmentSeries{
		Total: decimal.NewFromInt(100),
		Items: []InstallmentItem{{No: 1, Amount: decimal.NewFromInt(100)}},
	}

	assert.Error(t, series.Validate())
}
