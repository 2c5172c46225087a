package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func TestSeed_CreatesMissingSystemCategories(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListByUser", mock.Anything, uuid.Nil).Return([]*domain.Category{}, nil)

	var created []*domain.Category
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		created = append(created, c)
		return c.UserID == uuid.Nil
	})).Return(nil)

	require.NoError(t, NewSystemSeeder(repo).Seed(context.Background()))

	require.Len(t, created, 2)
	assert.Equal(t, FallbackExpenseCategoryID, created[0].ID)
	assert.Equal(t, "Outros", created[0].Name)
	assert.Equal(t, domain.CategoryKindDespesa, created[0].Kind)
	assert.Equal(t, FallbackIncomeCategoryID, created[1].ID)
	assert.Equal(t, "Outras receitas", created[1].Name)
	assert.Equal(t, domain.CategoryKindReceita, created[1].Kind)
}

func TestSeed_Idempotent(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListByUser", mock.Anything, uuid.Nil).Return([]*domain.Category{
		{ID: FallbackExpenseCategoryID, Name: "Outros", Kind: domain.CategoryKindDespesa},
		{ID: FallbackIncomeCategoryID, Name: "Outras receitas", Kind: domain.CategoryKindReceita},
	}, nil)

	require.NoError(t, NewSystemSeeder(repo).Seed(context.Background()))
	repo.AssertNotCalled(t, "Create")
}

func TestSeed_CreatesOnlyTheMissingOne(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListByUser", mock.Anything, uuid.Nil).Return([]*domain.Category{
		{ID: FallbackExpenseCategoryID, Name: "Outros", Kind: domain.CategoryKindDespesa},
	}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.ID == FallbackIncomeCategoryID
	})).Return(nil)

	require.NoError(t, NewSystemSeeder(repo).Seed(context.Background()))
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSeed_PropagatesStoreErrors(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListByUser", mock.Anything, uuid.Nil).Return(nil, errors.New("dial failed"))

	assert.Error(t, NewSystemSeeder(repo).Seed(context.Background()))
}
