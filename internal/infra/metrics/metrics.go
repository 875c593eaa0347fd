// Package metrics exposes Prometheus observability primitives for the
// menu platform.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the platform's Prometheus instruments. HTTP labels use
// the route template, not the raw path, to keep cardinality bounded.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	provisionings *prometheus.CounterVec
	menuCacheOps  *prometheus.CounterVec
}

// New registers and returns the platform metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardapio_http_requests_total",
		Help: "Counts HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardapio_http_request_duration_seconds",
		Help:    "HTTP request latency per method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	provisionings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardapio_tenant_provisionings_total",
		Help: "Counts tenant provisioning attempts by outcome.",
	}, []string{"outcome"})

	menuCacheOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardapio_menu_cache_operations_total",
		Help: "Counts public menu cache lookups by result.",
	}, []string{"result"})

	registry.MustRegister(httpRequests, httpDuration, provisionings, menuCacheOps)

	return &Metrics{
		registry:      registry,
		httpRequests:  httpRequests,
		httpDuration:  httpDuration,
		provisionings: provisionings,
		menuCacheOps:  menuCacheOps,
	}
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveProvisioning records one tenant provisioning attempt.
func (m *Metrics) ObserveProvisioning(outcome string) {
	m.provisionings.WithLabelValues(outcome).Inc()
}

// ObserveMenuCache records one public menu cache lookup result.
func (m *Metrics) ObserveMenuCache(result string) {
	m.menuCacheOps.WithLabelValues(result).Inc()
}
