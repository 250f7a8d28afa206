// Package prometheus records websearch request metrics with the Prometheus
// client library.
package prometheus

import (
	"github.com/fwojciec/websearch"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "websearch"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var durationBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30}

// Metrics holds the collectors shared by the decorators in this package.
type Metrics struct {
	SearchRequests *prometheus.CounterVec
	SearchDuration *prometheus.HistogramVec
	FetchRequests  *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	ToolCalls      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if any collector is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SearchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_requests_total",
				Help:      "Total number of search provider requests",
			},
			[]string{"provider", "status"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Search provider latency in seconds",
				Buckets:   durationBuckets,
			},
			[]string{"provider"},
		),
		FetchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_requests_total",
				Help:      "Total number of page fetches",
			},
			[]string{"status"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Page fetch latency in seconds",
				Buckets:   durationBuckets,
			},
		),
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total MCP tool invocations",
			},
			[]string{"tool", "status"},
		),
	}
	reg.MustRegister(
		m.SearchRequests,
		m.SearchDuration,
		m.FetchRequests,
		m.FetchDuration,
		m.ToolCalls,
	)
	return m
}

// RecordToolCall counts one tool invocation. A nil Metrics records nothing.
func (m *Metrics) RecordToolCall(tool string, err error) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, status(err)).Inc()
}

// status maps an error to a status label. Provider errors keep their code so
// invalid input can be told apart from an outage.
func status(err error) string {
	if err == nil {
		return StatusOK
	}
	if code := websearch.ErrorCode(err); code != websearch.EINTERNAL {
		return code
	}
	return StatusError
}
