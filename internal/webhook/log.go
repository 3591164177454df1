package webhook

import (
	"context"
	"log/slog"

	"MotoYaCheckout/internal/domain/notification"
)

// LogProcessor only records the notification. Nothing is looked up or stored.
// The receiver already logs every delivery at info level, so this adds detail at debug.
type LogProcessor struct {
	logger *slog.Logger
}

func NewLogProcessor(l *slog.Logger) *LogProcessor {
	if l == nil {
		l = slog.Default()
	}
	return &LogProcessor{logger: l}
}

func (p *LogProcessor) Process(ctx context.Context, n notification.Notification) error {
	p.logger.DebugContext(ctx, "Webhook notification processed",
		"topic", n.TopicOr(""),
		"payment_id", n.PaymentIDOr(""),
		"received_at", n.ReceivedAt)
	return nil
}
