package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreated   *prometheus.CounterVec
	summariesComputed *prometheus.CounterVec
	summaryDuration   prometheus.Histogram
	aiRequests        *prometheus.CounterVec
	aiDuration        prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expenses created, by categorization path",
			},
			[]string{"categorization"},
		),
		summariesComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summaries_computed_total",
				Help: "Total number of period summaries computed",
			},
			[]string{"period"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summary_duration_milliseconds",
				Help:    "Summary computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		aiRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_requests_total",
				Help: "Total number of AI collaborator requests",
			},
			[]string{"operation", "outcome"},
		),
		aiDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_milliseconds",
				Help:    "AI collaborator request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordExpenseCreated(categorization string) {
	m.expensesCreated.WithLabelValues(categorization).Inc()
}

func (m *PrometheusMetrics) RecordSummaryComputed(periodKind string, duration time.Duration) {
	m.summariesComputed.WithLabelValues(periodKind).Inc()
	m.summaryDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAIRequest(operation, outcome string, duration time.Duration) {
	m.aiRequests.WithLabelValues(operation, outcome).Inc()
	m.aiDuration.Observe(float64(duration.Milliseconds()))
}

// NoopMetrics discards all measurements. Used in tests.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordExpenseCreated(string)                   {}
func (m *NoopMetrics) RecordSummaryComputed(string, time.Duration)   {}
func (m *NoopMetrics) RecordAIRequest(string, string, time.Duration) {}
