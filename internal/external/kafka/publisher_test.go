package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisher(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "webhooks.payments")
	defer func() { _ = p.Close() }()

	assert.Equal(t, "webhooks.payments", p.writer.Topic)
	// Synchronous writes flush after BatchTimeout; the kafka-go default of 1s would stall webhooks.
	assert.LessOrEqual(t, p.writer.BatchTimeout, 10*time.Millisecond)
	assert.Positive(t, p.writer.BatchTimeout)
	assert.False(t, p.writer.Async)
}
