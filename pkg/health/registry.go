package health

import (
	"context"
	"sync"
)

// Registry holds the readiness checkers. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Register adds checkers after construction, e.g. once optional dependencies are wired.
func (r *Registry) Register(checkers ...Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checkers...)
}

type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs all registered checkers in parallel. The service is down if any check is.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	r.mu.RLock()
	checkers := append([]Checker(nil), r.checkers...)
	r.mu.RUnlock()

	if len(checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup

	for i, checker := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := checker.Check(ctx)
			results[i] = CheckResult{
				Name:    checker.Name(),
				Status:  res.Status,
				Message: res.Message,
			}
		}()
	}

	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
