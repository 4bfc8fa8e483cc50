package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gateway",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gateway",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	responseBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gateway",
		Name:      "http_response_bytes_total",
		Help:      "Total bytes written in HTTP response bodies by route.",
	}, []string{"route"})
)

// Metrics records Prometheus metrics for every request, labelled by the chi
// route pattern rather than the raw path so file names do not explode the
// label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.statusCode)).Inc()
		requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		responseBytes.WithLabelValues(route).Add(float64(ww.bytes))
	})
}
