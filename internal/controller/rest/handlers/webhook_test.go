package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MotoYaCheckout/internal/domain/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func webhookEngine(t *testing.T) (*gin.Engine, *notification.MockProcessor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockProcessor := notification.NewMockProcessor(gomock.NewController(t))
	handler := NewWebhookHandler(mockProcessor)

	engine := gin.New()
	engine.POST("/webhook", handler.Receive)
	return engine, mockProcessor
}

func TestWebhookHandler_Receive(t *testing.T) {
	t.Run("query parameters are acknowledged", func(t *testing.T) {
		// given
		engine, mockProcessor := webhookEngine(t)
		var got notification.Notification
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n notification.Notification) error {
				got = n
				return nil
			})

		// when
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook?id=123&topic=payment", nil))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		require.NotNil(t, got.PaymentID)
		assert.Equal(t, "123", *got.PaymentID)
		assert.Equal(t, "payment", *got.Topic)
	})

	t.Run("json body is acknowledged", func(t *testing.T) {
		// given
		engine, mockProcessor := webhookEngine(t)
		var got notification.Notification
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n notification.Notification) error {
				got = n
				return nil
			})

		// when
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook",
			strings.NewReader(`{"action": "payment.created", "type": "payment", "data": {"id": "987654321"}}`)))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "987654321", *got.PaymentID)
		assert.Equal(t, "payment", *got.Topic)
	})

	t.Run("empty body is acknowledged", func(t *testing.T) {
		// given
		engine, mockProcessor := webhookEngine(t)
		var got notification.Notification
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n notification.Notification) error {
				got = n
				return nil
			})

		// when
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook", nil))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		assert.Nil(t, got.PaymentID)
		assert.Nil(t, got.Topic)
	})

	t.Run("garbage body is acknowledged", func(t *testing.T) {
		engine, mockProcessor := webhookEngine(t)
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`not json at all`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("processor errors are acknowledged", func(t *testing.T) {
		engine, mockProcessor := webhookEngine(t)
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook?id=1&topic=payment", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("processor panics are acknowledged", func(t *testing.T) {
		engine, mockProcessor := webhookEngine(t)
		mockProcessor.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ notification.Notification) error {
				panic("unexpected")
			})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook?id=1&topic=payment", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})
}

func TestTopicLabel(t *testing.T) {
	payment := "payment"
	custom := "something-new"

	assert.Equal(t, "unknown", topicLabel(notification.Notification{}))
	assert.Equal(t, "payment", topicLabel(notification.Notification{Topic: &payment}))
	assert.Equal(t, "other", topicLabel(notification.Notification{Topic: &custom}))
}
