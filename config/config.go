package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WebhookModeLog   = "log"
	WebhookModeKafka = "kafka"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Frontend assets, including index.html and payment_status.html
	StaticDir string `env:"STATIC_DIR" envDefault:"www"`

	// Honour X-Forwarded-Proto when deriving redirect URLs (behind a TLS-terminating proxy)
	TrustProxyHeaders bool     `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	CORSAllowOrigins  []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxBodyBytes      int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	MercadoPago MercadoPago `envPrefix:"MP_"`
	Webhook     Webhook
}

type MercadoPago struct {
	AccessToken string        `env:"ACCESS_TOKEN,required,notEmpty"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.mercadopago.com"`
	Timeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"20s"`

	// Registered as notification_url on every preference. Must be reachable from the public internet.
	WebhookURL string `env:"WEBHOOK_URL" envDefault:"https://motoya.ar/webhook"`

	BreakerFailures    uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerOpenTimeout time.Duration `env:"BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
}

type Webhook struct {
	// Webhook processing mode: "log" (acknowledge and log) or "kafka" (also forward to Kafka)
	Mode           string        `env:"WEBHOOK_MODE" envDefault:"log"`
	PublishTimeout time.Duration `env:"WEBHOOK_PUBLISH_TIMEOUT" envDefault:"2s"`

	KafkaBrokers            []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"webhooks.payments"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	switch c.Webhook.Mode {
	case WebhookModeLog:
	case WebhookModeKafka:
		if len(c.Webhook.KafkaBrokers) == 0 {
			return fmt.Errorf("%w: KAFKA_BROKERS is required when WEBHOOK_MODE=kafka", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported WEBHOOK_MODE %q", ErrInvalidConfig, c.Webhook.Mode)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: MAX_BODY_BYTES must be positive", ErrInvalidConfig)
	}
	return nil
}
