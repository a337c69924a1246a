// Package metrics defines the Prometheus metric collectors used by termdex
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the process.
type Metrics struct {
	TokensRecordedTotal prometheus.Counter
	TokensDroppedTotal  *prometheus.CounterVec
	DocsIndexedTotal    prometheus.Counter
	DocsSkippedTotal    prometheus.Counter
	IndexedTerms        prometheus.Gauge
	BucketChainLength   prometheus.Histogram
	LookupsTotal        *prometheus.CounterVec
	LookupLatency       prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		TokensRecordedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tokens_recorded_total",
				Help: "Total tokens accepted into the index.",
			},
		),
		TokensDroppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokens_dropped_total",
				Help: "Total tokens dropped during indexing, by reason.",
			},
			[]string{"reason"},
		),
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents indexed.",
			},
		),
		DocsSkippedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_skipped_total",
				Help: "Total documents skipped because they could not be read.",
			},
		),
		IndexedTerms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "indexed_terms",
				Help: "Number of distinct terms in the index.",
			},
		),
		BucketChainLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bucket_chain_length",
				Help:    "Distinct terms per non-empty hash bucket.",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
			},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookups_total",
				Help: "Total term lookups by result (hit, miss).",
			},
			[]string{"result"},
		),
		LookupLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lookup_latency_seconds",
				Help:    "Single-term lookup latency in seconds.",
				Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),
	}

	prometheus.MustRegister(
		m.TokensRecordedTotal,
		m.TokensDroppedTotal,
		m.DocsIndexedTotal,
		m.DocsSkippedTotal,
		m.IndexedTerms,
		m.BucketChainLength,
		m.LookupsTotal,
		m.LookupLatency,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
