package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Fatal("expected a generated request id in the context")
	}
	if rr.Header().Get("X-Request-Id") != captured {
		t.Fatalf("expected response header to echo %q, got %q", captured, rr.Header().Get("X-Request-Id"))
	}
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "trace-123")

	RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	if captured != "trace-123" {
		t.Fatalf("expected caller id to be reused, got %q", captured)
	}
}
