// Package health implements liveness and readiness probes.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a whole readiness run.
const DefaultTimeout = 3 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of a single health check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker is implemented by every dependency the service needs to be ready.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
