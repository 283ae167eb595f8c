package pricing

import (
	"context"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Source fetches current prices from an upstream
type Source interface {
	// FetchPrices returns prices for the requested items. Items the upstream
	// has no trade data for are left out of the table.
	FetchPrices(ctx context.Context, items []domain.ItemID) (domain.PriceTable, error)
	// Name identifies the source in logs and metrics
	Name() string
}

// StaticSource serves a fixed price table, used for offline profiles and tests
type StaticSource struct {
	Prices domain.PriceTable
}

// NewStaticSource creates a source over a fixed table
func NewStaticSource(prices domain.PriceTable) *StaticSource {
	return &StaticSource{Prices: prices}
}

func (s *StaticSource) FetchPrices(_ context.Context, items []domain.ItemID) (domain.PriceTable, error) {
	out := make(domain.PriceTable, len(items))
	for _, id := range items {
		if p, ok := s.Prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *StaticSource) Name() string {
	return SourceNameStatic
}
