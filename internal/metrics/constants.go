package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Calculator metric names
const (
	MetricNameCalculationsTotal      = "herb_calculations_total"
	MetricNameCalculationDuration    = "herb_calculation_duration_seconds"
	MetricNameCalculationsDegraded   = "herb_calculations_degraded_total"
	MetricNameUnresolvedSignals      = "herb_unresolved_signals_total"
	MetricNamePriceCacheHits         = "price_cache_hits_total"
	MetricNamePriceCacheMisses       = "price_cache_misses_total"
	MetricNamePriceFetchErrors       = "price_fetch_errors_total"
	MetricNamePlayerStatesSavedTotal = "player_states_saved_total"
)

// Discord bot metric names
const (
	MetricNameDiscordCommandsTotal = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Calculator metric help text
const (
	HelpTextCalculationsTotal      = "Total number of herb calculator runs"
	HelpTextCalculationDuration    = "Herb calculator run latency in seconds, including state and price resolution"
	HelpTextCalculationsDegraded   = "Calculator runs that fell back on at least one unresolved signal"
	HelpTextUnresolvedSignals      = "Game state signals that could not be resolved"
	HelpTextPriceCacheHits         = "Price lookups served from the cache"
	HelpTextPriceCacheMisses       = "Price lookups that required a fetch"
	HelpTextPriceFetchErrors       = "Failed price fetches from the upstream source"
	HelpTextPlayerStatesSavedTotal = "Player state snapshots written"
)

// Discord bot metric help text
const (
	HelpTextDiscordCommandsTotal = "Slash commands received by the Discord bot"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelCompost = "compost"
	LabelSource  = "source"
	LabelCommand = "command"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CalculationLatencyBuckets covers a pure run (microseconds) up to a run that waited on a price fetch
var CalculationLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}
