package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWebhookURL = "https://motoya.ar/webhook"

func checkoutService(t *testing.T) (*Service, *MockPaymentClient) {
	t.Helper()

	mockClient := NewMockPaymentClient(gomock.NewController(t))
	service := NewService(mockClient, testWebhookURL)

	return service, mockClient
}

func TestService_CreatePreference(t *testing.T) {
	t.Parallel()

	t.Run("returns the processor session unchanged", func(t *testing.T) {
		// given
		service, mockClient := checkoutService(t)
		ctx := context.Background()
		order := OrderRequest{Title: "Casco", Quantity: 3, UnitPrice: 2500}
		expected := NewPreference(order, "http://localhost:3000", testWebhookURL)

		mockClient.EXPECT().
			CreatePreference(ctx, expected).
			Return(Session{ID: "123-abc", InitPoint: "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=123-abc"}, nil)

		// when
		session, err := service.CreatePreference(ctx, order, "http://localhost:3000")

		// then
		require.NoError(t, err)
		assert.Equal(t, "123-abc", session.ID)
		assert.Equal(t, "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=123-abc", session.InitPoint)
	})

	t.Run("returns the processor error unchanged", func(t *testing.T) {
		// given
		service, mockClient := checkoutService(t)
		ctx := context.Background()
		processorErr := errors.New("invalid access token")

		mockClient.EXPECT().CreatePreference(ctx, gomock.Any()).Return(Session{}, processorErr)

		// when
		session, err := service.CreatePreference(ctx, DecodeOrderRequest(nil), "http://localhost:3000")

		// then
		assert.Equal(t, Session{}, session)
		assert.Equal(t, processorErr, err)
	})

	t.Run("does not call the processor with an invalid preference", func(t *testing.T) {
		// given
		service, _ := checkoutService(t)

		// when
		_, err := service.CreatePreference(context.Background(), OrderRequest{}, "http://localhost:3000")

		// then
		assert.ErrorIs(t, err, ErrInvalidPreference)
	})
}
