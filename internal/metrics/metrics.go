// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration observes HTTP request latency per route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eurovote_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// RequestsInFlight tracks currently executing HTTP requests.
	RequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eurovote_http_requests_in_flight",
		Help: "Number of HTTP requests currently being served.",
	})

	// ReviewUpserts counts review submissions by outcome
	// (created, replaced, rejected).
	ReviewUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eurovote_review_upserts_total",
		Help: "Review submissions by outcome.",
	}, []string{"outcome"})
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
