// Package metrics provides Prometheus instrumentation for the service.
//
// Each Metrics value owns its registry, so tests and multiple servers in
// one process never collide on registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog"

// Metrics groups the collectors the service records into.
type Metrics struct {
	registry *prometheus.Registry

	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal *prometheus.CounterVec
	// RequestDuration tracks request latency by method and route.
	RequestDuration *prometheus.HistogramVec
	// Tickets counts generation attempts by result: ok, invalid, error.
	Tickets *prometheus.CounterVec
	// QRCodes counts encodings by result: ok, invalid, error.
	QRCodes *prometheus.CounterVec
	// EventPublishFailures counts ticket events that could not be published.
	EventPublishFailures prometheus.Counter
}

// New creates and registers all collectors plus the Go/process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		Tickets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "generated_total",
			Help:      "Ticket generation attempts by result.",
		}, []string{"result"}),
		QRCodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "qr",
			Name:      "encoded_total",
			Help:      "QR encodings by result.",
		}, []string{"result"}),
		EventPublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Ticket events that could not be published.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestTotal,
		m.RequestDuration,
		m.Tickets,
		m.QRCodes,
		m.EventPublishFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
