package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	loginsTotal         *prometheus.CounterVec
	sessionExpiredTotal prometheus.Counter
	activeSession       prometheus.Gauge
	transfersTotal      *prometheus.CounterVec
	transferAmount      prometheus.Histogram
	transferDuration    prometheus.Histogram
	loansTotal          *prometheus.CounterVec
	accountsClosedTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		loginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
		sessionExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "session_expirations_total",
				Help: "Total number of sessions ended by the inactivity timer",
			},
		),
		activeSession: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "session_active",
				Help: "Whether a session is currently active (0 or 1)",
			},
		),
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfer attempts by outcome",
			},
			[]string{"status"},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		transferDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		loansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loans_total",
				Help: "Total number of loan requests by outcome",
			},
			[]string{"status"},
		),
		accountsClosedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_closed_total",
				Help: "Total number of account closure attempts by outcome",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "session.login":
		if status != "" {
			m.loginsTotal.WithLabelValues(status).Inc()
		}
	case "session.expired":
		m.sessionExpiredTotal.Inc()
	case "transfers_total":
		if status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case "loans_total":
		if status != "" {
			m.loansTotal.WithLabelValues(status).Inc()
		}
	case "accounts_closed_total":
		if status != "" {
			m.accountsClosedTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transfer_duration":
		m.transferDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "session.active":
		m.activeSession.Set(value)
	}
}
