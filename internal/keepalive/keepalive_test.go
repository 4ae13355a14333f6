package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/lineup-service/internal/metrics"
	"github.com/preston-bernstein/lineup-service/internal/testutil"
)

func countingServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewAppliesDefaults(t *testing.T) {
	p := New(Options{})
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
	if p.maxRetries != defaultMaxRetries || p.retryInterval != defaultRetryInterval {
		t.Fatalf("unexpected retry defaults %d %s", p.maxRetries, p.retryInterval)
	}
	if p.client == nil {
		t.Fatalf("expected default client")
	}
	if p.Enabled() {
		t.Fatalf("expected pinger without url to be disabled")
	}

	if got := New(Options{MaxRetries: -1}).maxRetries; got != 0 {
		t.Fatalf("expected negative retries to disable retrying, got %d", got)
	}
}

func TestPingOnceSuccess(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK)
	rec := metrics.NewRecorder()
	p := New(Options{URL: srv.URL + "/api/health", Metrics: rec})

	p.pingOnce(context.Background())

	if hits.Load() != 1 {
		t.Fatalf("expected 1 request, got %d", hits.Load())
	}
	st := p.Status()
	if !st.IsHealthy() || st.LastError != "" {
		t.Fatalf("expected healthy status, got %+v", st)
	}
	if snap := rec.Snapshot(); snap.KeepAlivePings != 1 || snap.KeepAliveErrors != 0 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestPingOnceRetriesServerErrors(t *testing.T) {
	srv, hits := countingServer(t, http.StatusBadGateway)
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := New(Options{URL: srv.URL, MaxRetries: 2, RetryInterval: time.Millisecond, Metrics: rec, Logger: logger})

	p.pingOnce(context.Background())

	if hits.Load() != 3 {
		t.Fatalf("expected initial try plus 2 retries, got %d", hits.Load())
	}
	st := p.Status()
	if st.ConsecutiveFailures != 1 || !strings.Contains(st.LastError, "502") {
		t.Fatalf("unexpected status %+v", st)
	}
	if snap := rec.Snapshot(); snap.KeepAlivePings != 1 || snap.KeepAliveErrors != 1 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
	if !strings.Contains(buf.String(), "keepalive ping failed") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestPingOnceDoesNotRetryClientErrors(t *testing.T) {
	srv, hits := countingServer(t, http.StatusNotFound)
	p := New(Options{URL: srv.URL, MaxRetries: 3, RetryInterval: time.Millisecond})

	p.pingOnce(context.Background())

	if hits.Load() != 1 {
		t.Fatalf("expected no retries on 404, got %d requests", hits.Load())
	}
	if p.Status().IsHealthy() {
		t.Fatalf("expected unhealthy status")
	}
}

func TestPingRecoversAfterFailure(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := New(Options{URL: srv.URL})
	p.pingOnce(context.Background())
	if p.Status().ConsecutiveFailures != 1 {
		t.Fatalf("expected one failure, got %+v", p.Status())
	}

	fail.Store(false)
	p.pingOnce(context.Background())
	st := p.Status()
	if st.ConsecutiveFailures != 0 || st.LastError != "" || st.LastSuccess.IsZero() {
		t.Fatalf("expected reset after success, got %+v", st)
	}
}

func TestStartPingsAfterInitialDelayAndOnInterval(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK)
	p := New(Options{URL: srv.URL, InitialDelay: 5 * time.Millisecond, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for hits.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hits.Load() < 2 {
		t.Fatalf("expected repeated pings, got %d", hits.Load())
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	after := hits.Load()
	time.Sleep(30 * time.Millisecond)
	if hits.Load() != after {
		t.Fatalf("expected no pings after stop; before=%d after=%d", after, hits.Load())
	}
}

func TestStopDuringInitialDelay(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK)
	p := New(Options{URL: srv.URL, InitialDelay: time.Hour})

	p.Start(context.Background())
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no ping before the initial delay, got %d", hits.Load())
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	srv, _ := countingServer(t, http.StatusOK)
	p := New(Options{URL: srv.URL, InitialDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	select {
	case <-p.exited:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for loop to exit")
	}
}

func TestStartDisabledIsNoop(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p := New(Options{Logger: logger})

	p.Start(context.Background())
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "keepalive disabled") {
		t.Fatalf("expected disabled log, got %q", buf.String())
	}
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	p := New(Options{URL: "http://127.0.0.1:0", InitialDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestStopBeforeStart(t *testing.T) {
	p := New(Options{URL: "http://127.0.0.1:0"})
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
