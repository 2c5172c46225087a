package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account held by the user
type AccountType string

const (
	AccountTypeCorrente      AccountType = "CORRENTE"
	AccountTypePoupanca      AccountType = "POUPANCA"
	AccountTypeCarteira      AccountType = "CARTEIRA"
	AccountTypeCartaoCredito AccountType = "CARTAO_CREDITO"
)

// Account represents a user account in the external financial store
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	IsDefault bool
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name cannot be empty")
	}
	if a.UserID == uuid.Nil {
		return errors.New("account must belong to a user")
	}
	return nil
}
