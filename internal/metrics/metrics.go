// Package metrics exposes Prometheus instrumentation for the account
// manager, the theme preference, the HTTP API and the storage workers.
//
// Every Registry owns its own prometheus.Registry so tests and multiple
// servers in one process never collide on registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "garden_keeper"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Account manager
	Operations    *prometheus.CounterVec
	SessionActive prometheus.Gauge

	// HTTP API
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Storage
	StoreGCRuns     prometheus.Counter
	StoreGCRewrites prometheus.Counter
}

// NewRegistry creates the application metrics and registers them together
// with the Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "operations_total",
			Help:      "Account manager operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "session_active",
			Help:      "1 while an account is logged in, 0 otherwise.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StoreGCRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "gc_runs_total",
			Help:      "Value log garbage collection passes.",
		}),
		StoreGCRewrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "gc_rewrites_total",
			Help:      "Value log files rewritten by garbage collection.",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.Operations,
		r.SessionActive,
		r.RequestsTotal,
		r.RequestDuration,
		r.StoreGCRuns,
		r.StoreGCRewrites,
	)

	return r
}

// Gatherer returns the underlying registry for scraping in tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns the /metrics exposition handler.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveOperation counts one account manager call.
func (r *Registry) ObserveOperation(operation, outcome string) {
	r.Operations.WithLabelValues(operation, outcome).Inc()
}

// SetSessionActive records whether an account is logged in.
func (r *Registry) SetSessionActive(active bool) {
	if active {
		r.SessionActive.Set(1)
		return
	}
	r.SessionActive.Set(0)
}
