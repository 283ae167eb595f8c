package config

import "time"

// Defaults used when an environment variable is unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "herbfarm-calc"
	DefaultVersion     = "dev"
	DefaultDBName      = "herbfarm"
	DefaultDBMaxConns  = 10

	DefaultPricesAPIURL    = "https://prices.runescape.wiki/api/v1/osrs/latest"
	DefaultPricesUserAgent = "herbfarm-calc - expected value calculator"
	DefaultPriceCacheSize  = 1024
	DefaultPriceCacheTTL   = 10 * time.Minute

	DefaultDiscordHealthPort = "8082"
)
