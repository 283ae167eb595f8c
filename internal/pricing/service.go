package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
	"github.com/osse101/HerbFarmCalc_Go/internal/metrics"
)

// Service resolves price snapshots for the calculator, caching upstream prices
type Service interface {
	// Snapshot returns a price for every item the calculator uses. When the
	// upstream fails the cached subset is returned along with the error.
	Snapshot(ctx context.Context) (domain.PriceTable, error)
	// Price returns one item's price
	Price(ctx context.Context, item domain.ItemID) (int, error)
	// Invalidate drops every cached price
	Invalidate()
}

type service struct {
	source Source
	cache  *expirable.LRU[domain.ItemID, int]

	// fetchMu serialises upstream fetches so a cold cache triggers one request
	fetchMu sync.Mutex
}

// NewService creates a caching price service over source
func NewService(source Source, cacheSize int, ttl time.Duration) Service {
	return &service{
		source: source,
		cache:  expirable.NewLRU[domain.ItemID, int](cacheSize, nil, ttl),
	}
}

func (s *service) Snapshot(ctx context.Context) (domain.PriceTable, error) {
	items := domain.PricedItems()
	table, missing := s.fromCache(items)
	if len(missing) == 0 {
		return table, nil
	}

	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	// Another caller may have filled the cache while we waited
	table, missing = s.fromCache(items)
	if len(missing) == 0 {
		return table, nil
	}

	fetched, err := s.fetch(ctx, items)
	if err != nil {
		return table, err
	}
	return table.Merge(fetched), nil
}

func (s *service) Price(ctx context.Context, item domain.ItemID) (int, error) {
	if item == domain.NoItem {
		return 0, nil
	}
	if p, ok := s.cache.Get(item); ok {
		metrics.PriceCacheHits.Inc()
		return p, nil
	}
	metrics.PriceCacheMisses.Inc()

	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	fetched, err := s.fetch(ctx, []domain.ItemID{item})
	if err != nil {
		return 0, err
	}
	p, ok := fetched[item]
	if !ok {
		return 0, fmt.Errorf("%w: item %d", domain.ErrPriceUnavailable, item)
	}
	return p, nil
}

func (s *service) Invalidate() {
	s.cache.Purge()
	logger.Info(LogMsgPriceCacheCleared, "source", s.source.Name())
}

// fromCache splits items into cached prices and the ones that need fetching
func (s *service) fromCache(items []domain.ItemID) (domain.PriceTable, []domain.ItemID) {
	table := make(domain.PriceTable, len(items))
	var missing []domain.ItemID
	for _, id := range items {
		if p, ok := s.cache.Get(id); ok {
			table[id] = p
			metrics.PriceCacheHits.Inc()
			continue
		}
		metrics.PriceCacheMisses.Inc()
		missing = append(missing, id)
	}
	return table, missing
}

func (s *service) fetch(ctx context.Context, items []domain.ItemID) (domain.PriceTable, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	fetched, err := s.source.FetchPrices(ctx, items)
	if err != nil {
		metrics.PriceFetchErrors.WithLabelValues(s.source.Name()).Inc()
		log.Warn(LogMsgPriceFetchFailed, "source", s.source.Name(), "error", err)
		return nil, err
	}
	for id, p := range fetched {
		s.cache.Add(id, p)
	}
	log.Debug(LogMsgPricesFetched,
		"source", s.source.Name(),
		"requested", len(items),
		"received", len(fetched),
		"duration", time.Since(start))
	return fetched, nil
}
