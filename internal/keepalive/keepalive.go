// Package keepalive pings the service's own public health endpoint so that
// hosting platforms which idle out quiet instances keep it warm.
package keepalive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/lineup-service/internal/logging"
	"github.com/preston-bernstein/lineup-service/internal/metrics"
)

const (
	defaultInterval       = 5 * time.Minute
	defaultRequestTimeout = 10 * time.Second
	defaultMaxRetries     = 2
	defaultRetryInterval  = 500 * time.Millisecond
)

// Options configures a Pinger. Zero values fall back to defaults.
type Options struct {
	URL           string
	Interval      time.Duration
	InitialDelay  time.Duration
	MaxRetries    int
	RetryInterval time.Duration
	Client        *http.Client
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Status describes the recent health of the ping loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsHealthy reports whether the last ping succeeded.
func (s Status) IsHealthy() bool {
	return !s.LastSuccess.IsZero() && s.ConsecutiveFailures == 0
}

// Pinger issues a GET against a URL on a fixed interval.
type Pinger struct {
	url           string
	interval      time.Duration
	initialDelay  time.Duration
	maxRetries    int
	retryInterval time.Duration
	client        *http.Client
	logger        *slog.Logger
	metrics       *metrics.Recorder

	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Pinger.
func New(opts Options) *Pinger {
	p := &Pinger{
		url:           opts.URL,
		interval:      opts.Interval,
		initialDelay:  opts.InitialDelay,
		maxRetries:    opts.MaxRetries,
		retryInterval: opts.RetryInterval,
		client:        opts.Client,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		done:          make(chan struct{}),
		exited:        make(chan struct{}),
	}
	if p.interval <= 0 {
		p.interval = defaultInterval
	}
	if p.initialDelay < 0 {
		p.initialDelay = 0
	}
	if p.maxRetries < 0 {
		p.maxRetries = 0
	} else if opts.MaxRetries == 0 {
		p.maxRetries = defaultMaxRetries
	}
	if p.retryInterval <= 0 {
		p.retryInterval = defaultRetryInterval
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: defaultRequestTimeout}
	}
	return p
}

// Enabled reports whether a target URL is configured.
func (p *Pinger) Enabled() bool {
	return p.url != ""
}

// Start begins pinging until the context is cancelled or Stop is called.
// It is a no-op when no URL is configured.
func (p *Pinger) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	if !p.Enabled() {
		logging.Info(p.logger, "keepalive disabled")
		close(p.exited)
		return
	}

	go p.run(ctx)
}

func (p *Pinger) run(ctx context.Context) {
	defer close(p.exited)
	logging.Info(p.logger, "keepalive started",
		slog.String(logging.FieldURL, p.url),
		slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
	)

	delay := time.NewTimer(p.initialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		logging.Info(p.logger, "keepalive stopped")
		return
	case <-p.done:
		logging.Info(p.logger, "keepalive stopped")
		return
	case <-delay.C:
	}
	p.pingOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "keepalive stopped")
			return
		case <-p.done:
			logging.Info(p.logger, "keepalive stopped")
			return
		case <-ticker.C:
			p.pingOnce(ctx)
		}
	}
}

// Stop halts the loop and waits for it to exit or for ctx to expire.
func (p *Pinger) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.done) })

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pinger) pingOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.maxRetries)), ctx)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := p.get(ctx)
		if err != nil && attempt <= p.maxRetries {
			logging.Warn(p.logger, "keepalive ping retry", "attempt", attempt, "error", err)
		}
		return err
	}, policy)

	p.metrics.RecordKeepAlive(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "keepalive ping failed", err,
			slog.String(logging.FieldURL, p.url),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "keepalive ping ok",
		slog.String(logging.FieldURL, p.url),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

// get performs one request. Client errors are not worth retrying.
func (p *Pinger) get(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("keepalive: unexpected status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return backoff.Permanent(fmt.Errorf("keepalive: unexpected status %d", resp.StatusCode))
	}
	return nil
}

func (p *Pinger) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Pinger) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Pinger) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Pinger) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
