package webhook

import (
	"context"
	"fmt"
	"time"

	"MotoYaCheckout/internal/domain/notification"
	"MotoYaCheckout/internal/messaging"
)

const (
	NotificationMessageType = "payment.notification"

	// unknownPaymentKey groups notifications that carried no payment id.
	unknownPaymentKey = "unknown"
)

// AsyncProcessor forwards notifications to a message broker for downstream consumers.
type AsyncProcessor struct {
	publisher messaging.Publisher
	timeout   time.Duration
}

func NewAsyncProcessor(publisher messaging.Publisher, timeout time.Duration) *AsyncProcessor {
	return &AsyncProcessor{
		publisher: publisher,
		timeout:   timeout,
	}
}

// Process publishes the notification keyed by payment id. The publish is bounded by the
// processor timeout so a slow broker cannot hold the acknowledgement back for long.
func (p *AsyncProcessor) Process(ctx context.Context, n notification.Notification) error {
	envelope, err := messaging.NewEnvelope(n.PaymentIDOr(unknownPaymentKey), NotificationMessageType, n)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	return p.publisher.Publish(ctx, envelope)
}
