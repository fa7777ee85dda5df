package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mgrady4/civica/internal/models"
	"github.com/mgrady4/civica/internal/repository"
)

// MockLegislatorRepository is a mock implementation of repository.LegislatorRepository for testing
type MockLegislatorRepository struct {
	mock.Mock
}

func (m *MockLegislatorRepository) Search(ctx context.Context, f repository.LegislatorFilter) ([]models.Legislator, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Legislator), args.Error(1)
}

func (m *MockLegislatorRepository) ReplaceAll(ctx context.Context, rows []models.Legislator) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockLegislatorRepository) CountInOffice(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockBillRepository is a mock implementation of repository.BillRepository for testing
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Search(ctx context.Context, f repository.BillFilter) ([]models.Bill, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) ReplaceAll(ctx context.Context, rows []models.Bill) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockSpendingRepository is a mock implementation of repository.SpendingRepository for testing
type MockSpendingRepository struct {
	mock.Mock
}

func (m *MockSpendingRepository) Search(ctx context.Context, f repository.SpendingFilter) ([]models.SpendingAward, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpendingAward), args.Error(1)
}

func (m *MockSpendingRepository) ReplaceAll(ctx context.Context, rows []models.SpendingAward) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockSpendingRepository) SumByFiscalYear(ctx context.Context, year int) (float64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(float64), args.Error(1)
}

// MockLobbyingRepository is a mock implementation of repository.LobbyingRepository for testing
type MockLobbyingRepository struct {
	mock.Mock
}

func (m *MockLobbyingRepository) Search(ctx context.Context, f repository.LobbyingFilter) ([]models.LobbyingFiling, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LobbyingFiling), args.Error(1)
}

func (m *MockLobbyingRepository) ReplaceAll(ctx context.Context, rows []models.LobbyingFiling) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
