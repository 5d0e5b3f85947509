package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal     prometheus.Counter
	transactionsSkipped   *prometheus.CounterVec
	aggregationDuration   prometheus.Histogram
	lastAggregationSize   prometheus.Gauge
	draftValidationsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_aggregations_total",
				Help: "Total number of statement aggregation runs",
			},
		),
		transactionsSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_transactions_skipped_total",
				Help: "Total number of transactions excluded from aggregation",
			},
			[]string{"reason"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_aggregation_duration_milliseconds",
				Help:    "Statement aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		lastAggregationSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "statement_aggregation_size",
				Help: "Number of statements produced by the last aggregation run",
			},
		),
		draftValidationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_draft_validations_total",
				Help: "Total number of statement draft validations by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "statement.aggregation.completed":
		m.aggregationsTotal.Inc()
	case "statement.transaction.skipped":
		reason := tags["reason"]
		if reason == "" {
			reason = "unknown"
		}
		m.transactionsSkipped.WithLabelValues(reason).Inc()
	case "statement.draft.validated":
		if outcome := tags["outcome"]; outcome != "" {
			m.draftValidationsTotal.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "statement.aggregation" {
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "statement.aggregation.size" {
		m.lastAggregationSize.Set(value)
	}
}
