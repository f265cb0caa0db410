package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load Metrics
var (
	RecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameRecordsLoaded,
			Help: HelpTextRecordsLoaded,
		},
		[]string{LabelCategory},
	)

	LoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadFailures,
			Help: HelpTextLoadFailures,
		},
		[]string{LabelCategory, LabelReason},
	)

	ElementsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameElementsSkipped,
			Help: HelpTextElementsSkipped,
		},
		[]string{LabelCategory},
	)

	CategoryLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCategoryLoadSeconds,
			Help:    HelpTextCategoryLoadSeconds,
			Buckets: LoadLatencyBuckets,
		},
		[]string{LabelCategory},
	)
)

// Lookup Metrics
var (
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLookupsTotal,
			Help: HelpTextLookupsTotal,
		},
		[]string{LabelCategory, LabelResult},
	)
)

// LookupResult maps a comma-ok lookup outcome to its label value.
func LookupResult(found bool) string {
	if found {
		return ResultHit
	}
	return ResultMiss
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
