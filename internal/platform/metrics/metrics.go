package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Outcome labels for recognizer calls.
const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds Prometheus metrics for the parsing service.
type Metrics struct {
	// Recognizers
	RecognizerCallsTotal *prometheus.CounterVec
	RecognizerDuration   *prometheus.HistogramVec

	// Pipeline
	PipelineRunsTotal prometheus.Counter

	// Catalog
	CatalogSize    prometheus.Gauge
	CatalogUpserts prometheus.Counter
}

// NewMetrics creates and registers the parsing metrics. Registration happens
// once per process; later calls return the same instance.
//
// Metrics:
//   - moneyparse_recognizer_calls_total{pattern,mode,outcome}
//   - moneyparse_recognizer_duration_seconds{pattern,mode}
//   - moneyparse_pipeline_runs_total
//   - moneyparse_catalog_currencies
//   - moneyparse_catalog_upserts_total
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RecognizerCallsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "moneyparse_recognizer_calls_total",
					Help: "Total number of recognizer calls by outcome",
				},
				[]string{"pattern", "mode", "outcome"}, // mode is "strict" or "tolerant"
			),

			RecognizerDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "moneyparse_recognizer_duration_seconds",
					Help:    "Duration of recognizer calls in seconds",
					Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12), // 10µs to ~40ms
				},
				[]string{"pattern", "mode"},
			),

			PipelineRunsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "moneyparse_pipeline_runs_total",
					Help: "Total number of pipeline runs",
				},
			),

			CatalogSize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "moneyparse_catalog_currencies",
					Help: "Current number of currencies in the catalog",
				},
			),

			CatalogUpserts: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "moneyparse_catalog_upserts_total",
					Help: "Total number of currencies created or updated at runtime",
				},
			),
		}
	})

	return globalMetrics
}

// RecordRecognizer records one recognizer call.
func (m *Metrics) RecordRecognizer(pattern, mode, outcome string, d time.Duration) {
	m.RecognizerCallsTotal.WithLabelValues(pattern, mode, outcome).Inc()
	m.RecognizerDuration.WithLabelValues(pattern, mode).Observe(d.Seconds())
}

// RecordPipelineRun records one pipeline run.
func (m *Metrics) RecordPipelineRun() {
	m.PipelineRunsTotal.Inc()
}

// SetCatalogSize updates the catalog size gauge.
func (m *Metrics) SetCatalogSize(n int) {
	m.CatalogSize.Set(float64(n))
}

// RecordCatalogUpsert records a runtime catalog write.
func (m *Metrics) RecordCatalogUpsert() {
	m.CatalogUpserts.Inc()
}
