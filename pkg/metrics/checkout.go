package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultCreated = "created"
	ResultFailed  = "failed"
)

var (
	PreferencesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "preferences_total",
			Help:      "Checkout preferences requested, by result",
		},
		[]string{"result"},
	)

	PaymentClientDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "payment_client_duration_seconds",
			Help:      "Latency of payment processor API calls in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"operation", "outcome"},
	)

	PaymentClientBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "payment_client_breaker_state",
			Help:      "Circuit breaker state of the payment client (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "webhooks_received_total",
			Help:      "Payment processor notifications acknowledged, by topic",
		},
		[]string{"topic"},
	)
)

func init() {
	Registry.MustRegister(PreferencesTotal, PaymentClientDuration, PaymentClientBreakerState, WebhooksReceivedTotal)
}
