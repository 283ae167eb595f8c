package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Calculator Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsTotal,
			Help: HelpTextCalculationsTotal,
		},
		[]string{LabelCompost, LabelResult},
	)

	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCalculationDuration,
			Help:    HelpTextCalculationDuration,
			Buckets: CalculationLatencyBuckets,
		},
	)

	CalculationsDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsDegraded,
			Help: HelpTextCalculationsDegraded,
		},
	)

	UnresolvedSignals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnresolvedSignals,
			Help: HelpTextUnresolvedSignals,
		},
	)

	PlayerStatesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayerStatesSavedTotal,
			Help: HelpTextPlayerStatesSavedTotal,
		},
	)
)

// Price Metrics
var (
	PriceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheHits,
			Help: HelpTextPriceCacheHits,
		},
	)

	PriceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheMisses,
			Help: HelpTextPriceCacheMisses,
		},
	)

	PriceFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceFetchErrors,
			Help: HelpTextPriceFetchErrors,
		},
		[]string{LabelSource},
	)
)

// Discord Bot Metrics
var (
	DiscordCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommandsTotal,
			Help: HelpTextDiscordCommandsTotal,
		},
		[]string{LabelCommand},
	)
)
