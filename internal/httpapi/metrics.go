// ABOUTME: Prometheus metrics for the API server.
// ABOUTME: Request counts and latency, labeled by route template.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubtrack",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "API requests by route, method, and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clubtrack",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	degradedWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clubtrack",
		Subsystem: "http",
		Name:      "degraded_writes_total",
		Help:      "Writes that fell back to the local cache.",
	})
)

// routeTemplate returns the mux route pattern for labeling, avoiding
// per-document label cardinality.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}
