package metrics

import (
	"sync"
	"time"
)

type stats struct {
	searches          int
	cacheHits         int
	cacheMisses       int
	lastSearchLatency time.Duration
	reloads           int
	reloadErrors      int
	players           int
	ingestSkipped     int
	keepAlivePings    int
	keepAliveErrors   int
}

// Recorder captures lightweight, in-memory metrics and forwards them to
// OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu    sync.Mutex
	stats stats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// Snapshot is a copy of the recorder's counters.
type Snapshot struct {
	Searches          int
	CacheHits         int
	CacheMisses       int
	LastSearchLatency time.Duration
	Reloads           int
	ReloadErrors      int
	Players           int
	IngestSkipped     int
	KeepAlivePings    int
	KeepAliveErrors   int
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats
	return Snapshot{
		Searches:          s.searches,
		CacheHits:         s.cacheHits,
		CacheMisses:       s.cacheMisses,
		LastSearchLatency: s.lastSearchLatency,
		Reloads:           s.reloads,
		ReloadErrors:      s.reloadErrors,
		Players:           s.players,
		IngestSkipped:     s.ingestSkipped,
		KeepAlivePings:    s.keepAlivePings,
		KeepAliveErrors:   s.keepAliveErrors,
	}
}

// RecordSearch counts one search and whether it was served from the cache.
func (r *Recorder) RecordSearch(duration time.Duration, cached bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.searches++
	r.stats.lastSearchLatency = duration
	if cached {
		r.stats.cacheHits++
	} else {
		r.stats.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSearch(duration, cached)
	}
}

// RecordReload tracks a corpus reload. On success players is the new corpus
// size and skipped the number of entries ingestion dropped.
func (r *Recorder) RecordReload(players, skipped int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.reloads++
	delta := 0
	if err != nil {
		r.stats.reloadErrors++
	} else {
		delta = players - r.stats.players
		r.stats.players = players
		r.stats.ingestSkipped += skipped
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReload(delta, skipped, err)
	}
}

// RecordKeepAlive tracks one self ping.
func (r *Recorder) RecordKeepAlive(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.keepAlivePings++
	if err != nil {
		r.stats.keepAliveErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordKeepAlive(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
