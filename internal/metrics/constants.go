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

// Encounter metric names
const (
	MetricNameEncountersGenerated = "encounters_generated_total"
	MetricNameNoEncounters        = "encounters_none_total"
	MetricNameFlagshipRolls       = "flagship_rolls_total"
	MetricNameEncounterDifficulty = "encounter_difficulty"
	MetricNameDataAnomalies       = "catalog_data_anomalies_total"
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

// Encounter metric help text
const (
	HelpTextEncountersGenerated = "Total number of encounters generated"
	HelpTextNoEncounters        = "Total number of requests that produced no encounter"
	HelpTextFlagshipRolls       = "Total number of flagship gate rolls by result"
	HelpTextEncounterDifficulty = "Catch difficulty of generated encounters"
	HelpTextDataAnomalies       = "Total number of catalog fields found missing or out of range"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelLocation = "location"
	LabelSpecies  = "species"
	LabelFlagship = "flagship"
	LabelReason   = "reason"
	LabelResult   = "result"
	LabelKind     = "kind"
	LabelField    = "field"
)

// Flagship roll results
const (
	FlagshipResultHit           = "hit"
	FlagshipResultMiss          = "miss"
	FlagshipResultMisconfigured = "misconfigured"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets covers sub-millisecond handlers up to slow responses
var HTTPLatencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// DifficultyBuckets has one bucket per difficulty point
var DifficultyBuckets = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
