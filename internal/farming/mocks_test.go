package farming

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// MockPlayerRepository is a mock implementation of repository.Player
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetPlayer(ctx context.Context, name string) (*domain.PlayerState, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerRepository) UpsertPlayer(ctx context.Context, state *domain.PlayerState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeletePlayer(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockPlayerRepository) ListPlayers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPriceService is a mock implementation of pricing.Service
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
