package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("MP_ACCESS_TOKEN", "TEST-token")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "www", cfg.StaticDir)
		assert.False(t, cfg.TrustProxyHeaders)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
		assert.Equal(t, "TEST-token", cfg.MercadoPago.AccessToken)
		assert.Equal(t, "https://api.mercadopago.com", cfg.MercadoPago.BaseURL)
		assert.Equal(t, "https://motoya.ar/webhook", cfg.MercadoPago.WebhookURL)
		assert.Equal(t, 20*time.Second, cfg.MercadoPago.Timeout)
		assert.Equal(t, uint32(5), cfg.MercadoPago.BreakerFailures)
		assert.Equal(t, WebhookModeLog, cfg.Webhook.Mode)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("MP_ACCESS_TOKEN", "TEST-token")
		t.Setenv("PORT", "8080")
		t.Setenv("TRUST_PROXY_HEADERS", "true")
		t.Setenv("WEBHOOK_MODE", "kafka")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.True(t, cfg.TrustProxyHeaders)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Webhook.KafkaBrokers)
	})

	t.Run("fails without access token", func(t *testing.T) {
		t.Setenv("MP_ACCESS_TOKEN", "")

		_, err := New()

		assert.Error(t, err)
	})

	t.Run("kafka mode requires brokers", func(t *testing.T) {
		t.Setenv("MP_ACCESS_TOKEN", "TEST-token")
		t.Setenv("WEBHOOK_MODE", "kafka")

		_, err := New()

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unknown webhook mode", func(t *testing.T) {
		t.Setenv("MP_ACCESS_TOKEN", "TEST-token")
		t.Setenv("WEBHOOK_MODE", "grpc")

		_, err := New()

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
