// Package metrics exposes Prometheus collectors for the back office.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "backoffice"

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	managerCodesAllocated prometheus.Counter
	managerCodeCollisions prometheus.Counter
	areaDeletesBlocked    *prometheus.CounterVec
	eventPublishFailures  *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		managerCodesAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "managers",
			Name:      "codes_allocated_total",
			Help:      "Manager codes handed out by the sequence allocator.",
		}),
		managerCodeCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "managers",
			Name:      "code_collisions_total",
			Help:      "Manager inserts rejected because the allocated code was already taken.",
		}),
		areaDeletesBlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "areas",
			Name:      "deletes_blocked_total",
			Help:      "Area deletions refused by the integrity guard.",
		}, []string{"reason"}),
		eventPublishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Entity events that could not be published.",
		}, []string{"type"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.managerCodesAllocated,
		m.managerCodeCollisions,
		m.areaDeletesBlocked,
		m.eventPublishFailures,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry returns the registry backing this instance.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncInFlight() {
	m.httpInFlight.Inc()
}

func (m *Metrics) DecInFlight() {
	m.httpInFlight.Dec()
}

// RecordHTTPRequest records one completed request. path should be the route template.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) ManagerCodeAllocated() {
	m.managerCodesAllocated.Inc()
}

func (m *Metrics) ManagerCodeCollision() {
	m.managerCodeCollisions.Inc()
}

// AreaDeleteBlocked counts a refused deletion by error code.
func (m *Metrics) AreaDeleteBlocked(reason string) {
	m.areaDeletesBlocked.WithLabelValues(reason).Inc()
}

func (m *Metrics) EventPublishFailed(eventType string) {
	m.eventPublishFailures.WithLabelValues(eventType).Inc()
}
