//go:build integration
// +build integration

package testinfra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeProcessor stands in for the payment processor's preferences endpoint.
// It records every request body and answers with the configured status and body.
type FakeProcessor struct {
	Server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []map[string]any
}

func NewFakeProcessor() *FakeProcessor {
	p := &FakeProcessor{
		status: http.StatusCreated,
		body:   `{"id": "pref-it-1", "init_point": "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=pref-it-1"}`,
	}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	return p
}

func (p *FakeProcessor) Respond(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.body = body
}

func (p *FakeProcessor) Requests() []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]map[string]any(nil), p.requests...)
}

func (p *FakeProcessor) serve(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	_ = json.NewDecoder(r.Body).Decode(&req)

	p.mu.Lock()
	p.requests = append(p.requests, req)
	status, body := p.status, p.body
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (p *FakeProcessor) Cleanup() {
	p.Server.Close()
}
