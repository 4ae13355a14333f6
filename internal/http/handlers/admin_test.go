package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/lineup-service/internal/ingest"
	"github.com/preston-bernstein/lineup-service/internal/testutil"
)

type stubReloader struct {
	count int
	err   error
	calls int
}

func (s *stubReloader) Reload(ctx context.Context) (int, error) {
	_ = ctx
	s.calls++
	return s.count, s.err
}

func reloadRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/players/reload", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminReloadRequiresAuth(t *testing.T) {
	reloader := &stubReloader{count: 3}
	logger, buf := testutil.NewBufferLogger()
	h := NewAdminHandler(reloader, "secret", logger)

	for _, token := range []string{"", "wrong", "secret-but-longer"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest(token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if reloader.calls != 0 {
		t.Fatalf("expected no reload without auth, got %d calls", reloader.calls)
	}
	if !strings.Contains(buf.String(), "admin unauthorized") {
		t.Fatalf("expected unauthorized attempt to be logged")
	}
}

func TestAdminReloadReturnsCount(t *testing.T) {
	reloader := &stubReloader{count: 42}
	h := NewAdminHandler(reloader, "secret", nil)

	req := reloadRequest("")
	req.Header.Set("Authorization", "bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]int
	testutil.DecodeJSON(t, rr, &body)
	if body["count"] != 42 {
		t.Fatalf("expected count 42, got %v", body)
	}
}

func TestAdminReloadOpenWithoutToken(t *testing.T) {
	reloader := &stubReloader{count: 1}
	h := NewAdminHandler(reloader, "", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest(""))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if reloader.calls != 1 {
		t.Fatalf("expected reload to run, got %d calls", reloader.calls)
	}
}

func TestAdminReloadMapsErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"source unavailable", fmt.Errorf("open data: %w", ingest.ErrSourceUnavailable), http.StatusServiceUnavailable},
		{"unreadable file", fmt.Errorf("%w: all-players.json", ingest.ErrUnreadableFile), http.StatusInternalServerError},
		{"other failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAdminHandler(&stubReloader{err: tc.err}, "secret", nil)
			rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest("secret"))
			testutil.AssertStatus(t, rr, tc.want)
		})
	}
}

func TestAdminReloadWithoutReloader(t *testing.T) {
	h := NewAdminHandler(nil, "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest(""))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
