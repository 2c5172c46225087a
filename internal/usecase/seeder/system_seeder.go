package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// Fixed UUIDs for system categories. These are the hard-coded fallback
// identifiers of default resolution: when neither the user's text nor their
// preferences nor the store yields a category, transactions land here.
var (
	FallbackExpenseCategoryID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	FallbackIncomeCategoryID  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// SystemCategory defines the structure of a category to be seeded
type SystemCategory struct {
	ID   uuid.UUID
	Name string
	Kind domain.CategoryKind
}

// SystemSeeder ensures the system fallback categories exist in the store.
// System categories belong to no user (nil user id) and are visible to all.
type SystemSeeder struct {
	repo domain.CategoryRepository
}

// NewSystemSeeder creates a new SystemSeeder instance
func NewSystemSeeder(repo domain.CategoryRepository) *SystemSeeder {
	return &SystemSeeder{repo: repo}
}

// Seed creates any missing system category
func (s *SystemSeeder) Seed(ctx context.Context) error {
	systemCategories := []SystemCategory{
		{ID: FallbackExpenseCategoryID, Name: "Outros", Kind: domain.CategoryKindDespesa},
		{ID: FallbackIncomeCategoryID, Name: "Outras receitas", Kind: domain.CategoryKindReceita},
	}

	existing, err := s.repo.ListByUser(ctx, uuid.Nil)
	if err != nil {
		return err
	}
	present := make(map[uuid.UUID]bool, len(existing))
	for _, category := range existing {
		present[category.ID] = true
	}

	for _, sysCategory := range systemCategories {
		if present[sysCategory.ID] {
			continue
		}

		category := &domain.Category{
			ID:   sysCategory.ID,
			Name: sysCategory.Name,
			Kind: sysCategory.Kind,
			// system categories have no owner
		}
		if err := category.Validate(); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, category); err != nil {
			return err
		}
	}

	return nil
}
