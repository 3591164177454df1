package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"MotoYaCheckout/config"
	"MotoYaCheckout/internal/controller/rest"
	"MotoYaCheckout/internal/controller/rest/handlers"
	"MotoYaCheckout/internal/domain/checkout"
	"MotoYaCheckout/internal/domain/notification"
	"MotoYaCheckout/internal/external/kafka"
	"MotoYaCheckout/internal/external/mercadopago"
	"MotoYaCheckout/internal/webhook"
	"MotoYaCheckout/pkg/health"
	"MotoYaCheckout/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// App holds the wired HTTP engine and everything that must be closed on shutdown.
type App struct {
	Engine *gin.Engine

	closers []io.Closer
}

// New wires the checkout service. It opens no connections; the Kafka writer dials lazily.
func New(cfg config.Config, l *slog.Logger) (*App, error) {
	a := &App{Engine: NewGinEngine(l, cfg)}

	healthRegistry := health.NewRegistry(health.NewStaticChecker(cfg.StaticDir))

	mpClient, err := mercadopago.New(
		cfg.MercadoPago.BaseURL,
		cfg.MercadoPago.AccessToken,
		&http.Client{Timeout: cfg.MercadoPago.Timeout},
	)
	if err != nil {
		return nil, fmt.Errorf("app - New - mercadopago.New: %w", err)
	}
	paymentClient := mercadopago.NewBreakerClient(mpClient, mercadopago.BreakerConfig{
		Name:        "mercadopago",
		MaxFailures: cfg.MercadoPago.BreakerFailures,
		OpenTimeout: cfg.MercadoPago.BreakerOpenTimeout,
	})

	checkoutService := checkout.NewService(paymentClient, cfg.MercadoPago.WebhookURL)

	var processor notification.Processor
	switch cfg.Webhook.Mode {
	case config.WebhookModeKafka:
		l.Info("Webhook mode: kafka",
			"brokers", cfg.Webhook.KafkaBrokers,
			"topic", cfg.Webhook.KafkaNotificationsTopic)
		publisher := kafka.NewPublisher(cfg.Webhook.KafkaBrokers, cfg.Webhook.KafkaNotificationsTopic)
		a.closers = append(a.closers, publisher)
		processor = webhook.NewAsyncProcessor(publisher, cfg.Webhook.PublishTimeout)
		healthRegistry.Register(health.NewKafkaChecker(cfg.Webhook.KafkaBrokers))
	default:
		l.Info("Webhook mode: log")
		processor = webhook.NewLogProcessor(l)
	}

	router := rest.NewRouter(
		handlers.NewPreferenceHandler(checkoutService, cfg.TrustProxyHeaders),
		handlers.NewWebhookHandler(processor),
		handlers.NewStaticHandler(cfg.StaticDir),
		healthRegistry,
	)
	router.SetUp(a.Engine)

	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func Run(cfg config.Config) error {
	l := logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := New(cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			l.Error("Failed to close resources", "error", err)
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: a.Engine,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("Checkout service started", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app - Run - ListenAndServe: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		l.Info("Shutting down checkout service...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	l.Info("Checkout service stopped")
	return nil
}
