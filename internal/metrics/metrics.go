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

// Report Generation Metrics
var (
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReportsGenerated,
			Help: HelpTextReportsGenerated,
		},
		[]string{LabelMode, LabelSource},
	)

	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationRejections,
			Help: HelpTextValidationRejections,
		},
		[]string{LabelReason},
	)

	AugmentationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAugmentationFallbacks,
			Help: HelpTextAugmentationFallbacks,
		},
		[]string{LabelReason},
	)

	AugmentationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAugmentationCacheHits,
			Help: HelpTextAugmentationCacheHits,
		},
	)

	CatalogUnresolvedItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogUnresolvedItems,
			Help: HelpTextCatalogUnresolvedItems,
		},
	)
)
