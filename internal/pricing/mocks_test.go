package pricing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// MockSource is a mock implementation of Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) FetchPrices(ctx context.Context, items []domain.ItemID) (domain.PriceTable, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceTable), args.Error(1)
}

func (m *MockSource) Name() string {
	return "mock"
}
