package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTP metrics are labelled by route template, not raw path, to keep cardinality bounded.
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"handler", "method", "status_code"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status_code"},
	)
)

func init() {
	Registry.MustRegister(HTTPRequestDuration, HTTPRequestsTotal)
}
