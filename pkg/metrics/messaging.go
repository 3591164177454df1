package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagePublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kafka",
			Name:      "message_publish_duration_seconds",
			Help:      "Kafka message publish duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "status"},
	)

	MessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Total number of Kafka messages published",
		},
		[]string{"topic", "status"},
	)
)

func init() {
	Registry.MustRegister(MessagePublishDuration, MessagesPublished)
}
