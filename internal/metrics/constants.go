package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Content load metric names
const (
	MetricNameRecordsLoaded       = "content_records_loaded"
	MetricNameLoadFailures        = "content_load_failures_total"
	MetricNameElementsSkipped     = "content_elements_skipped_total"
	MetricNameCategoryLoadSeconds = "content_category_load_duration_seconds"
)

// Lookup metric names
const (
	MetricNameLookupsTotal = "content_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextRecordsLoaded       = "Number of records held per content category after load"
	HelpTextLoadFailures        = "Category loads that failed, by reason"
	HelpTextElementsSkipped     = "Malformed elements skipped during a lenient category load"
	HelpTextCategoryLoadSeconds = "Time spent reading and parsing one category file"
	HelpTextLookupsTotal        = "Registry lookups by category and result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelCategory = "category"
	LabelReason   = "reason"
	LabelResult   = "result"
)

// Lookup results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Buckets for category load duration (seconds); content files are small
var LoadLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1}
