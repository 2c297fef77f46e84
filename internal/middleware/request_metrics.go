package middleware

import (
	"net/http"
	"time"

	"github.com/posturelab/posturecheck/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

// RequestMetrics tracks request counts, in-flight requests and
// request durations.
func RequestMetrics(manager *metrics.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			manager.CounterRequests.WithLabelValues(r.Method).Inc()
			manager.GaugeRequests.Inc()
			defer manager.GaugeRequests.Dec()

			start := time.Now()
			next.ServeHTTP(w, r)
			manager.HistRequestDuration.Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}
