// Package metrics exposes Prometheus collectors for the HTTP API and the
// user status cache.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "asset_management"

// Registry owns the application collectors. It uses its own
// prometheus.Registry so several instances can coexist in tests.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    *prometheus.CounterVec
	CacheEvictionsTotal *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		CacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Total number of cache hits",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Total number of cache misses",
			},
			[]string{"cache"},
		),
		CacheEvictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_evictions_total",
				Help:      "Total number of cache evictions",
			},
			[]string{"cache"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		r.CacheHitsTotal,
		r.CacheMissesTotal,
		r.CacheEvictionsTotal,
	)

	return r
}

// Handler serves the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Registry) CacheHit(cache string) {
	r.CacheHitsTotal.WithLabelValues(cache).Inc()
}

func (r *Registry) CacheMiss(cache string) {
	r.CacheMissesTotal.WithLabelValues(cache).Inc()
}

func (r *Registry) CacheEviction(cache string) {
	r.CacheEvictionsTotal.WithLabelValues(cache).Inc()
}

// Middleware records request count and latency labelled by the chi route
// pattern, so /users/1 and /users/2 share a series.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unknown"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
