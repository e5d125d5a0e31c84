// Package metrics registers the backend's Prometheus instruments.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "munchbox_http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "munchbox_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// OrdersCreated counts orders accepted at checkout.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "munchbox_orders_created_total",
		Help: "Orders created.",
	})

	// StatusUpdates counts order status changes by target status.
	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "munchbox_order_status_updates_total",
		Help: "Order status updates, by target status.",
	}, []string{"status"})

	// Signups counts successful account registrations.
	Signups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "munchbox_signups_total",
		Help: "Successful user signups.",
	})

	// PersistenceFailures counts best-effort writes that hit an I/O
	// error. The request still succeeded from the caller's view, so
	// this counter is the only place such failures are visible.
	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "munchbox_persistence_failures_total",
		Help: "Collection writes that failed and were discarded.",
	})
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
