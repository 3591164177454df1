package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"MotoYaCheckout/internal/domain/notification"
	"MotoYaCheckout/internal/messaging"
	"MotoYaCheckout/pkg/pointers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPublisher captures the last published envelope for assertions.
type mockPublisher struct {
	lastEnvelope messaging.Envelope
	lastDeadline time.Time
	publishErr   error
}

func (m *mockPublisher) Publish(ctx context.Context, env messaging.Envelope) error {
	m.lastEnvelope = env
	m.lastDeadline, _ = ctx.Deadline()
	return m.publishErr
}

func (m *mockPublisher) Close() error {
	return nil
}

func TestAsyncProcessor_Process(t *testing.T) {
	t.Run("uses payment id as partition key", func(t *testing.T) {
		// given
		mockPub := &mockPublisher{}
		processor := NewAsyncProcessor(mockPub, time.Second)
		n := notification.Notification{
			PaymentID:  pointers.Ptr("123"),
			Topic:      pointers.Ptr("payment"),
			ReceivedAt: time.Now().UTC(),
		}

		// when
		err := processor.Process(context.Background(), n)

		// then
		require.NoError(t, err)
		assert.Equal(t, "123", mockPub.lastEnvelope.Key)
		assert.Equal(t, NotificationMessageType, mockPub.lastEnvelope.Type)
		assert.NotEmpty(t, mockPub.lastEnvelope.EventID)
		assert.False(t, mockPub.lastDeadline.IsZero(), "publish should be bounded by a deadline")

		var payload notification.Notification
		require.NoError(t, json.Unmarshal(mockPub.lastEnvelope.Payload, &payload))
		assert.Equal(t, "123", *payload.PaymentID)
		assert.Equal(t, "payment", *payload.Topic)
	})

	t.Run("notifications without payment id share a key", func(t *testing.T) {
		mockPub := &mockPublisher{}
		processor := NewAsyncProcessor(mockPub, 0)

		err := processor.Process(context.Background(), notification.Notification{})

		require.NoError(t, err)
		assert.Equal(t, "unknown", mockPub.lastEnvelope.Key)
		assert.True(t, mockPub.lastDeadline.IsZero())
	})

	t.Run("propagates publisher errors", func(t *testing.T) {
		expectedErr := errors.New("broker down")
		processor := NewAsyncProcessor(&mockPublisher{publishErr: expectedErr}, time.Second)

		err := processor.Process(context.Background(), notification.Notification{})

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestLogProcessor_Process(t *testing.T) {
	processor := NewLogProcessor(nil)

	assert.NoError(t, processor.Process(context.Background(), notification.Notification{}))
}
