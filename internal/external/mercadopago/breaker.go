package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"MotoYaCheckout/internal/domain/checkout"
	"MotoYaCheckout/pkg/metrics"

	"github.com/sony/gobreaker/v2"
)

const defaultMaxFailures = 5

type BreakerConfig struct {
	Name        string
	MaxFailures uint32        // consecutive failures that open the circuit
	OpenTimeout time.Duration // how long the circuit stays open before a probe
}

// BreakerClient guards a checkout.PaymentClient with a circuit breaker.
// Processor rejections of the request itself (4xx) do not count as failures.
type BreakerClient struct {
	next checkout.PaymentClient
	cb   *gobreaker.CircuitBreaker[checkout.Session]
}

func NewBreakerClient(next checkout.PaymentClient, cfg BreakerConfig) *BreakerClient {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Payment client circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
			metrics.PaymentClientBreakerState.WithLabelValues(name).Set(float64(to))
		},
	}

	return &BreakerClient{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[checkout.Session](settings),
	}
}

func (b *BreakerClient) CreatePreference(ctx context.Context, pref checkout.Preference) (checkout.Session, error) {
	session, err := b.cb.Execute(func() (checkout.Session, error) {
		return b.next.CreatePreference(ctx, pref)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return checkout.Session{}, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	return session, err
}

// State reports the current breaker state.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}
