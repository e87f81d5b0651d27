// Package metrics provides Prometheus metrics for the pizza restaurants API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the registry and every metric the API records.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Domain Metrics
	restaurantPizzasCreated prometheus.Counter
	restaurantsDeleted      prometheus.Counter
	validationFailures      *prometheus.CounterVec
	databaseErrors          *prometheus.CounterVec
}

// NewManager creates a new metrics manager. Without WithRegistry a private
// registry is used, so several managers can coexist in tests.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pizza",
		subsystem:        "api",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.restaurantPizzasCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "restaurant_pizzas_created_total",
		Help:      "Total number of menu offerings created",
	})

	m.restaurantsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "restaurants_deleted_total",
		Help:      "Total number of restaurants deleted",
	})

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected request payloads by resource",
		},
		[]string{"resource"},
	)

	m.databaseErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "database_errors_total",
			Help:      "Total number of persistence failures by operation",
		},
		[]string{"operation"},
	)
}

// RecordHTTPRequest records one served request and its duration.
func (m *Manager) RecordHTTPRequest(route, method string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	status := strconv.Itoa(statusCode)
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, status).Observe(durationMs)
}

// RecordRestaurantPizzaCreated counts a new menu offering.
func (m *Manager) RecordRestaurantPizzaCreated() {
	if m == nil {
		return
	}
	m.restaurantPizzasCreated.Inc()
}

// RecordRestaurantDeleted counts a deleted restaurant.
func (m *Manager) RecordRestaurantDeleted() {
	if m == nil {
		return
	}
	m.restaurantsDeleted.Inc()
}

// RecordValidationFailure counts a rejected payload for resource.
func (m *Manager) RecordValidationFailure(resource string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(resource).Inc()
}

// RecordDatabaseError counts a persistence failure during operation.
func (m *Manager) RecordDatabaseError(operation string) {
	if m == nil {
		return
	}
	m.databaseErrors.WithLabelValues(operation).Inc()
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
