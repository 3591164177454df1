package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"MotoYaCheckout/internal/messaging"
	"MotoYaCheckout/pkg/correlation"
	"MotoYaCheckout/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// batchTimeout caps how long a synchronous write waits for its batch to fill.
// kafka-go defaults to 1s, which would hold every webhook acknowledgement back.
const batchTimeout = 5 * time.Millisecond

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Publisher{writer: writer}
}

// Publish writes one envelope keyed by env.Key, so notifications for a payment share a partition.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}

	if corrID := correlation.FromContext(ctx); corrID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(corrID),
		})
	}

	start := time.Now()
	err = p.writer.WriteMessages(ctx, msg)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.MessagePublishDuration.WithLabelValues(p.writer.Topic, status).Observe(time.Since(start).Seconds())
	metrics.MessagesPublished.WithLabelValues(p.writer.Topic, status).Inc()

	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.writer.Topic, err)
	}

	slog.DebugContext(ctx, "Message published",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
