package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ingestedRows       prometheus.Counter
	ingestFailures     prometheus.Counter
	ingestDuration     prometheus.Histogram
	categorizedRows    *prometheus.CounterVec
	correctionsApplied *prometheus.CounterVec
	activeSessions     prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ingestedRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_rows_ingested_total",
				Help: "Total number of statement rows kept after parsing",
			},
		),
		ingestFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_ingest_failures_total",
				Help: "Total number of statement uploads rejected",
			},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_ingest_duration_milliseconds",
				Help:    "Statement parse and categorize duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categorizedRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_categorized_total",
				Help: "Total number of transactions categorized by category",
			},
			[]string{"category"},
		),
		correctionsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_corrections_total",
				Help: "Total number of manual category corrections by kind",
			},
			[]string{"kind"},
		),
		activeSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions_total",
				Help: "Current number of live analysis sessions",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordIngest(rows int, duration time.Duration) {
	m.ingestedRows.Add(float64(rows))
	m.ingestDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordIngestFailure() {
	m.ingestFailures.Inc()
}

func (m *PrometheusMetrics) RecordCategorized(category string) {
	m.categorizedRows.WithLabelValues(category).Inc()
}

func (m *PrometheusMetrics) RecordCorrection(kind string) {
	m.correctionsApplied.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
