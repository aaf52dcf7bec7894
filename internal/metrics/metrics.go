// Package metrics holds the prometheus collectors of the storefront service
// and the handler exposing them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics contains every collector of the service. Each instance owns its
// registry, so tests can build as many as they need.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	IndexRunsTotal  *prometheus.CounterVec
	IndexedProducts prometheus.Counter

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),

		IndexRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search_index",
				Name:      "runs_total",
				Help:      "Total number of search index synchronizations",
			},
			[]string{"status"},
		),

		IndexedProducts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search_index",
				Name:      "products_total",
				Help:      "Total number of products sent to the search index",
			},
		),

		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.IndexRunsTotal,
		m.IndexedProducts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordRequest counts a served request. route is the chi route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordIndexRun counts one synchronization of the search index.
func (m *Metrics) RecordIndexRun(indexed int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.IndexRunsTotal.WithLabelValues(status).Inc()
	m.IndexedProducts.Add(float64(indexed))
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
