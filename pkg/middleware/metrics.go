package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts requests by route and status and observes latency. The
// collectors are passed in so this package stays importable without pulling
// in the service's metric definitions.
func Metrics(requests *prometheus.CounterVec, duration prometheus.Histogram) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			start := time.Now()
			next.ServeHTTP(wrapped, r)

			requests.WithLabelValues(routeLabel(r.URL.Path), strconv.Itoa(wrapped.statusCode)).Inc()
			duration.Observe(time.Since(start).Seconds())
		})
	}
}

// routeLabel collapses paths with embedded page numbers so the route label
// stays low-cardinality.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/customer/"):
		return "/customer/:page"
	case strings.HasPrefix(path, "/api/v1/customers/page/"):
		return "/api/v1/customers/page/:page"
	default:
		return path
	}
}
