package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealth(t *testing.T) {
	h := NewSystemHandler(pingerFunc(func(context.Context) error { return nil }))

	rec := doRequest(t, http.HandlerFunc(h.Health), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeMap(t, rec); body["status"] != "healthy" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	h := NewSystemHandler(pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))

	rec := doRequest(t, http.HandlerFunc(h.Health), http.MethodGet, "/health", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
