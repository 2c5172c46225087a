package executor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rafaelcoutinho/finpilot-backend/internal/adapter/audit"
	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
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

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) CreateInstallmentSeries(ctx context.Context, series *domain.InstallmentSeries) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteInstallmentSeries(ctx context.Context, seriesID uuid.UUID) error {
	args := m.Called(ctx, seriesID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListCategoryHistory(ctx context.Context, userID uuid.UUID, months int) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetPeriodIndicators(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*domain.PeriodIndicators, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodIndicators), args.Error(1)
}

func (m *MockTransactionRepository) ListUpcomingScheduled(ctx context.Context, userID uuid.UUID, horizonDays int) ([]*domain.ScheduledTransaction, error) {
	args := m.Called(ctx, userID, horizonDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduledTransaction), args.Error(1)
}

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBudgetRepository is a mock implementation of BudgetRepository
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvalidator is a mock implementation of Invalidator
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(userID uuid.UUID) {
	m.Called(userID)
}

// MockAuditRecorder is a mock implementation of audit.Recorder
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Append(record *audit.Record) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockAuditRecorder) Close() error {
	args := m.Called()
	return args.Error(0)
}
