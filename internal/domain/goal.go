package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the external financial store
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Deadline     time.Time
	Active       bool
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if g.Name == "" {
		return errors.New("goal name cannot be empty")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("goal target amount must be positive")
	}
	if g.SavedAmount.IsNegative() {
		return errors.New("goal saved amount cannot be negative")
	}
	return nil
}

// Budget represents a monthly spending ceiling for one category
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Ceiling      decimal.Decimal
	Month        time.Time // first day of the month the ceiling applies to
	Active       bool
}

// Validate ensures the budget adheres to domain rules
func (b *Budget) Validate() error {
	if b.CategoryID == uuid.Nil {
		return errors.New("budget must reference a category")
	}
	if b.Ceiling.LessThanOrEqual(decimal.Zero) {
		return errors.New("budget ceiling must be positive")
	}
	return nil
}
