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

// Business metric names
const (
	MetricNamePredictionsSubmitted = "predictions_submitted_total"
	MetricNameFightsScored         = "fights_scored_total"
	MetricNameFightsCanceled       = "fights_canceled_total"
	MetricNameEventsFinalized      = "events_finalized_total"
	MetricNameLeaderboardBuilds    = "leaderboard_builds_total"
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

// Business metric help text
const (
	HelpTextPredictionsSubmitted = "Total number of predictions submitted"
	HelpTextFightsScored         = "Total number of fights scored"
	HelpTextFightsCanceled       = "Total number of fights canceled"
	HelpTextEventsFinalized      = "Total number of events finalized"
	HelpTextLeaderboardBuilds    = "Total number of leaderboard builds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelScope  = "scope"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
