package bootstrap

import (
	"log/slog"

	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
)

// Services holds the application services the HTTP layer depends on.
type Services struct {
	Pricing pricing.Service
	Farming farming.Service
}

// InitializeServices wires the price feed and the farming service on top of repos.
func InitializeServices(cfg *config.Config, repos *Repositories) *Services {
	source := pricing.NewWikiSource(cfg.PricesAPIURL, cfg.PricesUserAgent)
	prices := pricing.NewService(source, cfg.PriceCacheSize, cfg.PriceCacheTTL)

	slog.Info(LogMsgServicesReady,
		"price_source", source.Name(),
		"price_cache_size", cfg.PriceCacheSize,
		"price_cache_ttl", cfg.PriceCacheTTL)

	return &Services{
		Pricing: prices,
		Farming: farming.NewService(repos.Player, prices),
	}
}
