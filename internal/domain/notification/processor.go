package notification

import "context"

//go:generate mockgen -source processor.go -destination mock_processor.go -package notification

// Processor handles an acknowledged notification. Its error never reaches the processor's
// HTTP exchange: the webhook is acknowledged regardless.
type Processor interface {
	Process(ctx context.Context, n Notification) error
}
