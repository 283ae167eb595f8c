package pricing

import "time"

// Source names
const (
	SourceNameWiki   = "wiki"
	SourceNameStatic = "static"
)

// Wiki client settings
const (
	DefaultHTTPTimeout = 10 * time.Second
	MaxResponseBytes   = 16 << 20
)

// Log messages
const (
	LogMsgPricesFetched     = "Fetched prices"
	LogMsgPriceFetchFailed  = "Price fetch failed"
	LogMsgPriceCacheCleared = "Price cache cleared"
)
