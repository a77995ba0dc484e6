// Package telemetry holds the Prometheus collectors exposed at /metrics.
//
// Collectors carry only low-cardinality labels (source, outcome, type);
// query text never becomes a label.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellnesshub_lookups_total",
			Help: "Catalog lookups by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	LookupResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellnesshub_lookup_results",
			Help:    "Number of resources returned per lookup",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 15},
		},
		[]string{"source"},
	)

	RecordFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wellnesshub_lookup_record_failures_total",
			Help: "Lookup events that could not be stored",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wellnesshub_api_rate_limited_total",
			Help: "API requests rejected by the per-client rate limit",
		},
	)
)

// ObserveLookup counts one lookup.
func ObserveLookup(source, outcome string, results int) {
	Lookups.WithLabelValues(source, outcome).Inc()
	LookupResults.WithLabelValues(source).Observe(float64(results))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
