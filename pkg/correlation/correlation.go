// Package correlation carries a per-request correlation id through contexts, headers and messages.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header for correlation ID.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName is the Kafka header for correlation ID.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext extracts the correlation ID stored in ctx.
// Returns empty string if not present, e.g. for background work outside a request.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID returns a new context carrying the correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a new correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}
