package middleware

import (
	"net/http"
	"time"

	"cinema-reservation/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request latency labelled by the matched chi route pattern.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrap(w)

			next.ServeHTTP(rw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.ObserveRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
