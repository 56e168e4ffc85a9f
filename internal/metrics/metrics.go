package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRejectedTotal,
			Help: HelpTextHTTPRejectedTotal,
		},
		[]string{LabelReason},
	)
)

// Query Metrics
var (
	QueryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQueryOperationsTotal,
			Help: HelpTextQueryOperationsTotal,
		},
		[]string{LabelBackend, LabelOperation, LabelCollection, LabelStatus},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameQueryDuration,
			Help:    HelpTextQueryDuration,
			Buckets: QueryLatencyBuckets,
		},
		[]string{LabelBackend, LabelOperation},
	)
)

// Business Metrics
var (
	ShelfOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShelfOperationsTotal,
			Help: HelpTextShelfOperationsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
