package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); len(got) != 36 {
		t.Fatalf("expected generated uuid, got %s", got)
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}
}

func TestIntQuery(t *testing.T) {
	cases := map[string]int{
		"/?page=3":    3,
		"/?page=-2":   -2,
		"/?page=abc":  7,
		"/?page=":     7,
		"/":           7,
		"/?page=%201": 1,
	}
	for target, want := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if got := IntQuery(req, "page", 7); got != want {
			t.Fatalf("%s: expected %d, got %d", target, want, got)
		}
	}
}

func TestBoolQuery(t *testing.T) {
	cases := map[string]bool{
		"/?flip=true":  true,
		"/?flip=1":     true,
		"/?flip=TRUE":  true,
		"/?flip=false": false,
		"/?flip=yes":   false,
		"/":            false,
	}
	for target, want := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if got := BoolQuery(req, "flip"); got != want {
			t.Fatalf("%s: expected %v, got %v", target, want, got)
		}
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if _, ok := BearerToken(req); ok {
		t.Fatalf("expected no token without header")
	}
	req.Header.Set("Authorization", "Bearer abc")
	if tok, ok := BearerToken(req); !ok || tok != "abc" {
		t.Fatalf("expected abc, got %q", tok)
	}
	req.Header.Set("Authorization", "bearer xyz")
	if tok, ok := BearerToken(req); !ok || tok != "xyz" {
		t.Fatalf("expected case-insensitive scheme, got %q", tok)
	}
	req.Header.Set("Authorization", "Basic abc")
	if _, ok := BearerToken(req); ok {
		t.Fatalf("expected basic auth to be rejected")
	}
}
