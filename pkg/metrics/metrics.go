// Package metrics holds the process wide Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "review"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	EngineRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "engine_requests_total", Help: "Search engine calls."},
		[]string{"operation", "outcome"},
	)
	EngineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "engine_request_duration_seconds",
			Help:    "Search engine call duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/invalidations."},
		[]string{"cache", "event"},
	)
	BulkItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "bulk_items_total", Help: "Bulk create items by outcome."},
		[]string{"outcome"},
	)
)

// Cache events.
const (
	CacheHit        = "hit"
	CacheMiss       = "miss"
	CacheSet        = "set"
	CacheInvalidate = "invalidate"
)

// InitRegistry returns a registry holding every collector of this package.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, EngineRequests, EngineLatency, CacheEvents, BulkItems)
	return reg
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveEngine(operation string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EngineRequests.WithLabelValues(operation, outcome).Inc()
	EngineLatency.WithLabelValues(operation).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveBulk(succeeded, failed int) {
	BulkItems.WithLabelValues("succeeded").Add(float64(succeeded))
	BulkItems.WithLabelValues("failed").Add(float64(failed))
}
