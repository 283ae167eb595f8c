package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockFarmingService mocks farming.Service
type MockFarmingService struct {
	mock.Mock
}

func (m *MockFarmingService) Calculate(ctx context.Context, req farming.CalculateRequest) (*domain.CalculatorResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculatorResult), args.Error(1)
}

func (m *MockFarmingService) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockFarmingService) SavePlayer(ctx context.Context, state *domain.PlayerState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockFarmingService) DeletePlayer(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockFarmingService) ListPlayers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPriceService mocks pricing.Service
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) Snapshot(ctx context.Context) (domain.PriceTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceTable), args.Error(1)
}

func (m *MockPriceService) Price(ctx context.Context, item domain.ItemID) (int, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Error(1)
}

func (m *MockPriceService) Invalidate() {
	m.Called()
}
