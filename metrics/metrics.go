// Package metrics provides Prometheus collectors for HTTP server and chat
// pipeline monitoring. All collectors register with the default registry at
// package initialization and are exported at /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	ChatRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_request_total",
			Help: "Chat requests by context branch and outcome",
		},
		[]string{"context", "outcome"},
	)

	DetectedSymptoms = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_detected_symptoms",
			Help:    "Symptoms detected per chat request",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		},
	)

	AssistantRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_request_duration_seconds",
			Help:    "Latency of upstream generative model calls",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Number of live per-client rate limiter buckets",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(ChatRequestTotals)
	prometheus.MustRegister(DetectedSymptoms)
	prometheus.MustRegister(AssistantRequestDuration)
	prometheus.MustRegister(RateLimiterBucketsTotal)
}
