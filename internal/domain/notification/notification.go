package notification

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"MotoYaCheckout/pkg/pointers"
)

// Notification is what could be read from a processor webhook. Both fields may be absent.
// Nothing here is verified against the processor.
type Notification struct {
	PaymentID  *string   `json:"payment_id,omitempty"`
	Topic      *string   `json:"topic,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// Extract reads the payment id and topic from the query string, falling back to the JSON body.
//
//	payment id: ?id, then body data.id, then ?data.id
//	topic:      ?topic, then body type, then ?type
//
// The body is optional and may have any shape.
func Extract(query url.Values, body []byte) Notification {
	b := parseBody(body)

	return Notification{
		PaymentID:  firstNonEmpty(query.Get("id"), b.dataID, query.Get("data.id")),
		Topic:      firstNonEmpty(query.Get("topic"), b.eventType, query.Get("type")),
		ReceivedAt: time.Now().UTC(),
	}
}

func (n Notification) PaymentIDOr(fallback string) string {
	if n.PaymentID == nil {
		return fallback
	}
	return *n.PaymentID
}

func (n Notification) TopicOr(fallback string) string {
	if n.Topic == nil {
		return fallback
	}
	return *n.Topic
}

type bodyFields struct {
	dataID    string
	eventType string
}

func parseBody(body []byte) bodyFields {
	var out bodyFields

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return out
	}

	out.eventType = scalar(root["type"])

	var data map[string]json.RawMessage
	if err := json.Unmarshal(root["data"], &data); err == nil {
		out.dataID = scalar(data["id"])
	}

	return out
}

// scalar renders a JSON string or number as text. Ids arrive as either.
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return pointers.Ptr(v)
		}
	}
	return nil
}
