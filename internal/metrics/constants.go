package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Report generation metric names
const (
	MetricNameReportsGenerated       = "reports_generated_total"
	MetricNameValidationRejections   = "validation_rejections_total"
	MetricNameAugmentationFallbacks  = "augmentation_fallbacks_total"
	MetricNameAugmentationCacheHits  = "augmentation_cache_hits_total"
	MetricNameCatalogUnresolvedItems = "catalog_unresolved_items_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Report generation metric help text
const (
	HelpTextReportsGenerated       = "Total number of reports generated, by interaction mode and source"
	HelpTextValidationRejections   = "Total number of requests rejected during normalization"
	HelpTextAugmentationFallbacks  = "Total number of augmentation failures recovered by the rule engine"
	HelpTextAugmentationCacheHits  = "Total number of augmentation responses served from cache"
	HelpTextCatalogUnresolvedItems = "Total number of selected items that did not resolve in the catalog"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelSource = "source"
	LabelReason = "reason"
)

// Source label values for ReportsGenerated
const (
	SourceRuleEngine = "rule_engine"
	SourceGemini     = "gemini"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
