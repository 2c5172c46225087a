package contextbuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

func stubSearchReads(ts *testStore, userID uuid.UUID) {
	ts.transactions.On("ListRecent", mock.Anything, userID, mock.Anything).Return([]*domain.Transaction{
		{ID: uuid.New(), Description: "Compra no mercado", Amount: decimal.NewFromInt(80)},
		{ID: uuid.New(), Description: "Uber", Amount: decimal.NewFromInt(25)},
	}, nil)
	ts.accounts.On("ListByUser", mock.Anything, userID).Return([]*domain.Account{
		{ID: uuid.New(), Name: "Conta Corrente"},
	}, nil)
	ts.categories.On("ListByUser", mock.Anything, userID).Return([]*domain.Category{
		{ID: uuid.New(), Name: "Mercado", Kind: domain.CategoryKindDespesa},
		{ID: uuid.New(), Name: "Transporte", Kind: domain.CategoryKindDespesa},
	}, nil)
	ts.goals.On("ListActive", mock.Anything, userID).Return([]*domain.Goal{
		{ID: uuid.New(), Name: "Viagem"},
	}, nil)
	ts.budgets.On("ListActive", mock.Anything, userID).Return([]*domain.Budget{
		{ID: uuid.New(), CategoryName: "Mercado", Ceiling: decimal.NewFromInt(500)},
	}, nil)
}

func TestSearchRelevant_MatchesAcrossCollections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ts := newTestStore(Options{})
	stubSearchReads(ts, userID)

	result := ts.service.SearchRelevant(ctx, userID, "mercado")

	assert.Len(t, result.Transactions, 1)
	assert.Len(t, result.Categories, 1)
	assert.Len(t, result.Budgets, 1)
	assert.Empty(t, result.Accounts)
	assert.Empty(t, result.Goals)
}

func TestSearchRelevant_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ts := newTestStore(Options{})
	stubSearchReads(ts, userID)

	result := ts.service.SearchRelevant(ctx, userID, "MERCADO")
	assert.Len(t, result.Categories, 1)
}

func TestSearchRelevant_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(Options{})

	result := ts.service.SearchRelevant(ctx, uuid.New(), "   ")
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Accounts)
}

func TestSearchRelevant_StoreFailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ts := newTestStore(Options{})

	boom := errors.New("store down")
	ts.transactions.On("ListRecent", mock.Anything, userID, mock.Anything).Return(nil, boom)
	ts.accounts.On("ListByUser", mock.Anything, userID).Return(nil, boom)
	ts.categories.On("ListByUser", mock.Anything, userID).Return(nil, boom)
	ts.goals.On("ListActive", mock.Anything, userID).Return(nil, boom)
	ts.budgets.On("ListActive", mock.Anything, userID).Return(nil, boom)

	result := ts.service.SearchRelevant(ctx, userID, "mercado")

	// advisory path: empty collections, never an error
	assert.NotNil(t, result.Transactions)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Accounts)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.Goals)
	assert.Empty(t, result.Budgets)
}
