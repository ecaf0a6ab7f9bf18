package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for ingestion and
// district detection.
type Metrics struct {
	IngestRuns     *prometheus.CounterVec // labels: outcome={ok,fetch_error,store_error}
	IngestRecords  prometheus.Counter
	IngestDuration prometheus.Histogram

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error}
	ReconcileTotal  *prometheus.CounterVec // labels: result={matched,fallback,none}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.IngestRuns,
		m.IngestRecords,
		m.IngestDuration,
		m.GeocodeRequests,
		m.ReconcileTotal,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ovr",
			Name:      "ingest_runs_total",
			Help:      "Ingestion runs by outcome.",
		}, []string{"outcome"}),
		IngestRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ovr",
			Name:      "ingest_records_total",
			Help:      "Total measurement records written by ingestion.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ovr",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete ingestion run.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ovr",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding requests by outcome.",
		}, []string{"outcome"}),
		ReconcileTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ovr",
			Name:      "reconcile_total",
			Help:      "District name reconciliations by result.",
		}, []string{"result"}),
	}
}
