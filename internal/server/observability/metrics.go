// Package observability exposes the server's Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mdrrmo"

// Metrics holds the Prometheus collectors for the API server.
type Metrics struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	// HTTP metrics. route is the matched route template, never the raw path.
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route

	SeedRowsInserted   *prometheus.CounterVec // labels: dataset
	IncidentsSubmitted *prometheus.CounterVec // labels: type
	AuthFailures       *prometheus.CounterVec // labels: reason={unauthenticated,forbidden}
}

// NewMetrics creates the collectors and registers them with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	m.mustRegister()
	return m
}

// NewMetricsForTesting registers on a fresh registry to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	reg := prometheus.NewRegistry()
	m := newMetrics(reg, reg)
	m.mustRegister()
	return m
}

func newMetrics(r prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	return &Metrics{
		registerer: r,
		gatherer:   g,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		SeedRowsInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_rows_inserted_total",
			Help:      "Default rows inserted by the seed coordinator.",
		}, []string{"dataset"}),
		IncidentsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_submitted_total",
			Help:      "Accepted incident reports by incident type.",
		}, []string{"type"}),
		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected requests by reason.",
		}, []string{"reason"}),
	}
}

func (m *Metrics) mustRegister() {
	m.registerer.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.SeedRowsInserted,
		m.IncidentsSubmitted,
		m.AuthFailures,
	)
}

// Gatherer is the registry the /metrics endpoint should serve.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.gatherer }

// SeedInserted records a completed seed pass.
func (m *Metrics) SeedInserted(dataset string, rows int) {
	m.SeedRowsInserted.WithLabelValues(dataset).Add(float64(rows))
}

// IncidentSubmitted counts one accepted report.
func (m *Metrics) IncidentSubmitted(incidentType string) {
	m.IncidentsSubmitted.WithLabelValues(incidentType).Inc()
}
