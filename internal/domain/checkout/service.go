package checkout

import (
	"context"
	"log/slog"
)

type Service struct {
	client          PaymentClient
	notificationURL string
}

func NewService(client PaymentClient, notificationURL string) *Service {
	return &Service{
		client:          client,
		notificationURL: notificationURL,
	}
}

// CreatePreference submits the order to the processor and waits for the checkout session.
// Processor errors are returned unchanged so their message reaches the caller.
func (s *Service) CreatePreference(ctx context.Context, order OrderRequest, baseURL string) (Session, error) {
	pref := NewPreference(order, baseURL, s.notificationURL)
	if err := pref.Validate(); err != nil {
		return Session{}, err
	}

	session, err := s.client.CreatePreference(ctx, pref)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create preference", "error", err)
		return Session{}, err
	}

	slog.InfoContext(ctx, "Preference created", "preference_id", session.ID)
	return session, nil
}
