// Package metrics provides Prometheus metrics for the rental front end.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rental-frontend/app/domain"
)

const namespace = "rental"

// SessionMetrics records session transitions and auth operation outcomes.
// It implements port.SessionObserver.
type SessionMetrics struct {
	registry *prometheus.Registry

	// TransitionsTotal counts snapshot status transitions.
	TransitionsTotal *prometheus.CounterVec
	// OperationsTotal counts session operations by outcome code.
	OperationsTotal *prometheus.CounterVec
	// Authenticated is 1 while a user with a profile is signed in.
	Authenticated prometheus.Gauge
	// ListingQueriesTotal counts listing searches by kind.
	ListingQueriesTotal *prometheus.CounterVec
}

// New creates the metric set on a dedicated registry
func New() *SessionMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &SessionMetrics{
		registry: registry,
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_transitions_total",
				Help:      "Total number of session status transitions",
			},
			[]string{"from", "to"},
		),
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_operations_total",
				Help:      "Total number of session operations by result code",
			},
			[]string{"operation", "code"},
		),
		Authenticated: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "session_authenticated",
				Help:      "Session status (1 = authenticated, 0 = otherwise)",
			},
		),
		ListingQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listing_queries_total",
				Help:      "Total number of listing queries",
			},
			[]string{"kind"},
		),
	}
}

// StatusChanged records a snapshot status transition
func (m *SessionMetrics) StatusChanged(from, to domain.SessionStatus) {
	m.TransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	if to == domain.StatusAuthenticated {
		m.Authenticated.Set(1)
	} else {
		m.Authenticated.Set(0)
	}
}

// OperationCompleted records the outcome of a session operation
func (m *SessionMetrics) OperationCompleted(operation string, err error) {
	code := "OK"
	if err != nil {
		code = string(domain.CodeOf(err))
	}
	m.OperationsTotal.WithLabelValues(operation, code).Inc()
}

// RecordListingQuery records a listing search
func (m *SessionMetrics) RecordListingQuery(kind string) {
	m.ListingQueriesTotal.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *SessionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
