package mercadopago

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrUnavailable is returned when the processor cannot be reached (network error, timeout).
	ErrUnavailable = errors.New("payment processor unavailable")

	// ErrInvalidResponse is returned when a 2xx response cannot be used.
	ErrInvalidResponse = errors.New("invalid payment processor response")

	// ErrCircuitOpen is returned without calling the processor while the circuit breaker is open.
	ErrCircuitOpen = errors.New("payment processor circuit open")
)

// APIError is a non-2xx answer from the processor. Error() is the processor's own message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsClientError reports a rejection of the request itself (bad token, invalid payload).
// Rate limiting is not one: it says nothing about the request.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// countsAsSuccess tells the circuit breaker which errors say nothing about processor health.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsClientError()
}
