package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	handler := newTestHandler(t)

	rec := doRequest(t, handler, http.MethodPost, "/add", `{"a":1,"b":2}`)

	requestID := rec.Header().Get("X-Request-Id")
	if requestID == "" {
		t.Fatal("expected X-Request-Id header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("expected X-Request-Id to be a valid UUID, got %q: %v", requestID, err)
	}
}

func TestRequestIDMiddleware_PropagatesValidID(t *testing.T) {
	handler := newTestHandler(t)

	want := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(`{"a":1,"b":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", want)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != want {
		t.Errorf("expected request ID %q to be propagated, got %q", want, got)
	}
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(`{"a":1,"b":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-Id")
	if got == "not-a-uuid" {
		t.Error("expected invalid request ID to be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected replacement to be a valid UUID, got %q: %v", got, err)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1

	s := New(WithConfig(cfg))
	handler := s.setupRoutes()

	// First request gets the single token.
	rec := doRequest(t, handler, http.MethodPost, "/add", `{"a":1,"b":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("expected X-RateLimit-Limit header of 1, got %q", rec.Header().Get("X-RateLimit-Limit"))
	}

	// Second immediate request must be rejected.
	rec = doRequest(t, handler, http.MethodPost, "/add", `{"a":1,"b":2}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rec.Code)
	}
	if got := decodeError(t, rec); got != "Rate limit exceeded" {
		t.Errorf("expected error 'Rate limit exceeded', got %q", got)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on rate limited response")
	}
}

func TestRateLimitMiddleware_SkipsHealth(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1

	s := New(WithConfig(cfg))
	handler := s.setupRoutes()

	// Probes must never be rate limited.
	for i := 0; i < 10; i++ {
		rec := doRequest(t, handler, http.MethodGet, "/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("health probe %d rejected with status %d", i, rec.Code)
		}
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/boom": func(_ http.ResponseWriter, _ *http.Request) {
			panic("handler exploded")
		},
	}

	s := New(WithHandler(routes))
	handler := s.setupRoutes()

	rec := doRequest(t, handler, http.MethodGet, "/boom", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	if got := decodeError(t, rec); got != "Internal server error" {
		t.Errorf("expected error 'Internal server error', got %q", got)
	}
}

func TestPanicRecoveryMiddleware_ErrorValue(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/boom": func(_ http.ResponseWriter, _ *http.Request) {
			panic(http.ErrAbortHandler)
		},
	}

	s := New(WithHandler(routes))
	handler := s.setupRoutes()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected panic to be recovered, got %v", r)
		}
	}()

	rec := doRequest(t, handler, http.MethodGet, "/boom", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}
