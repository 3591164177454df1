package handlers

import (
	"log/slog"
	"net/http"

	"MotoYaCheckout/internal/domain/notification"
	"MotoYaCheckout/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const webhookAck = "OK"

// knownTopics bounds the metric label set; anything else is counted as "other".
var knownTopics = map[string]bool{
	"payment":                         true,
	"merchant_order":                  true,
	"chargebacks":                     true,
	"point_integration_wh":            true,
	"subscription_preapproval":        true,
	"subscription_authorized_payment": true,
}

type WebhookHandler struct {
	processor notification.Processor
}

func NewWebhookHandler(p notification.Processor) *WebhookHandler {
	return &WebhookHandler{processor: p}
}

// Receive acknowledges every delivery with 200. The processor redelivers on anything else
// and nothing here absorbs redeliveries, so no failure may change the status.
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Webhook handling panicked", "panic", r)
		}
		if !c.Writer.Written() {
			c.String(http.StatusOK, webhookAck)
		}
	}()

	n := notification.Extract(c.Request.URL.Query(), readBody(c))

	slog.InfoContext(ctx, "Webhook received",
		"topic", n.TopicOr(""),
		"payment_id", n.PaymentIDOr(""))
	metrics.WebhooksReceivedTotal.WithLabelValues(topicLabel(n)).Inc()

	if err := h.processor.Process(ctx, n); err != nil {
		slog.WarnContext(ctx, "Webhook processing failed", "error", err,
			"payment_id", n.PaymentIDOr(""))
	}
}

func topicLabel(n notification.Notification) string {
	if n.Topic == nil {
		return "unknown"
	}
	if knownTopics[*n.Topic] {
		return *n.Topic
	}
	return "other"
}
