package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricSessionEvent     = "session_event"
	MetricLedgerApply      = "ledger_apply"
	MetricMovementAmount   = "movement_amount"
	MetricDirectoryAccount = "directory_accounts"
)

type PrometheusMetrics struct {
	sessionEventsTotal  *prometheus.CounterVec
	ledgerApplyDuration prometheus.Histogram
	movementAmount      *prometheus.HistogramVec
	directoryAccounts   prometheus.Gauge
}

// NewPrometheusMetrics registers the session collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_session_events_total",
				Help: "Total number of session events by event and outcome",
			},
			[]string{"event", "outcome"},
		),
		ledgerApplyDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankist_ledger_apply_duration_milliseconds",
				Help:    "Duration of applying a ledger transaction to the directory in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		movementAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankist_movement_amount",
				Help:    "Amount of accepted transfers and loans in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"kind"},
		),
		directoryAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankist_directory_accounts",
				Help: "Current number of accounts in the directory",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSessionEvent:
		event := tags["event"]
		outcome := tags["outcome"]
		if event != "" && outcome != "" {
			m.sessionEventsTotal.WithLabelValues(event, outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricLedgerApply:
		m.ledgerApplyDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricMovementAmount:
		if kind := tags["kind"]; kind != "" {
			m.movementAmount.WithLabelValues(kind).Observe(value)
		}
	case MetricDirectoryAccount:
		m.directoryAccounts.Set(value)
	}
}
