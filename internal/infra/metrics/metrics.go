// Package metrics exposes business and upstream metrics in Prometheus format.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickeats"

// Metrics owns a private registry instead of the global default registerer.
type Metrics struct {
	registry             *prometheus.Registry
	ordersPlaced         *prometheus.CounterVec
	placementFailures    *prometheus.CounterVec
	distanceLookup       *prometheus.HistogramVec
	notificationsDropped prometheus.Counter
	pushesSent           *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders committed, by payment type.",
		}, []string{"payment_type"}),
		placementFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_placement_failures_total",
			Help:      "Order placements that failed, by error code.",
		}, []string{"reason"}),
		distanceLookup: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "distance_lookup_duration_seconds",
			Help:      "Latency of distance provider lookups.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"provider", "status"}),
		notificationsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_notifications_dropped_total",
			Help:      "Order-created events dropped because the dispatch queue was full.",
		}),
		pushesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shop_pushes_total",
			Help:      "Shop push notifications attempted by the worker, by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ordersPlaced,
		m.placementFailures,
		m.distanceLookup,
		m.notificationsDropped,
		m.pushesSent,
	)

	return m
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// OrderPlaced counts a committed order.
func (m *Metrics) OrderPlaced(paymentType string) {
	m.ordersPlaced.WithLabelValues(paymentType).Inc()
}

// OrderPlacementFailed counts a failed placement under its error code.
func (m *Metrics) OrderPlacementFailed(reason string) {
	m.placementFailures.WithLabelValues(reason).Inc()
}

// ObserveDistanceLookup records one provider call.
func (m *Metrics) ObserveDistanceLookup(provider, status string, elapsed time.Duration) {
	m.distanceLookup.WithLabelValues(provider, status).Observe(elapsed.Seconds())
}

// NotificationDropped counts an event rejected by a full dispatch queue.
func (m *Metrics) NotificationDropped() {
	m.notificationsDropped.Inc()
}

// PushSent counts a shop push attempt under its service.PushOutcome* value.
func (m *Metrics) PushSent(outcome string) {
	m.pushesSent.WithLabelValues(outcome).Inc()
}

// RegisterDBStats exports connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}
