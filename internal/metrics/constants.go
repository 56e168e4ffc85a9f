package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRejectedTotal    = "http_requests_rejected_total"
)

// Query layer metric names
const (
	MetricNameQueryOperationsTotal = "shelf_query_operations_total"
	MetricNameQueryDuration        = "shelf_query_duration_seconds"
)

// Business metric names
const (
	MetricNameShelfOperationsTotal = "shelf_operations_total"
	MetricNameActiveSessions       = "shelf_active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRejectedTotal    = "Total number of HTTP requests rejected by middleware"

	HelpTextQueryOperationsTotal = "Total number of query backend calls"
	HelpTextQueryDuration        = "Query backend latency in seconds"

	HelpTextShelfOperationsTotal = "Total number of user-initiated shelf operations by outcome"
	HelpTextActiveSessions       = "Current number of cached shelf sessions"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelBackend    = "backend"
	LabelOperation  = "operation"
	LabelCollection = "collection"
	LabelOutcome    = "outcome"
	LabelReason     = "reason"
)

// Rejection reasons
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// Status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	QueryLatencyBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}
)
