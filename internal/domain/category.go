package domain

import (
	"errors"

	"github.com/google/uuid"
)

// CategoryKind separates income categories from expense categories
type CategoryKind string

const (
	CategoryKindReceita CategoryKind = "RECEITA"
	CategoryKindDespesa CategoryKind = "DESPESA"
)

// Category represents a transaction category in the external financial store
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Kind        CategoryKind
	IsPreferred bool // explicit user preference, wins over store order on default resolution
}

// Validate ensures the category adheres to domain rules
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name cannot be empty")
	}
	if c.Kind != CategoryKindReceita && c.Kind != CategoryKindDespesa {
		return errors.New("category kind must be RECEITA or DESPESA")
	}
	return nil
}
