package players

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
	"github.com/preston-bernstein/lineup-service/internal/ingest"
	"github.com/preston-bernstein/lineup-service/internal/logging"
	"github.com/preston-bernstein/lineup-service/internal/metrics"
	"github.com/preston-bernstein/lineup-service/internal/search"
	"github.com/preston-bernstein/lineup-service/internal/store"
)

// Store defines the contract for publishing and reading corpus snapshots.
type Store interface {
	Current() *store.Snapshot
	Replace(items []players.Player, loadedAt time.Time) *store.Snapshot
}

// Source produces a fresh batch of players on every call.
type Source interface {
	Load(ctx context.Context) (ingest.Batch, error)
}

// Options carries the optional collaborators of a Service.
type Options struct {
	CacheSize int
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Now       func() time.Time
}

// Service coordinates player search and corpus reloads.
type Service struct {
	store   Store
	source  Source
	cache   *search.Cache
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	// reloadMu serializes reloads; searches never take it.
	reloadMu sync.Mutex
}

// NewService constructs a Service over store, reloading from source.
func NewService(st Store, source Source, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Service{
		store:   st,
		source:  source,
		cache:   search.NewCache(opts.CacheSize),
		logger:  opts.Logger,
		metrics: opts.Metrics,
		now:     now,
	}
	s.cache.Invalidate(st.Current().Version)
	return s
}

// Search answers q against the current snapshot, consulting the result cache first.
func (s *Service) Search(q search.Query) search.Result {
	start := time.Now()
	snap := s.store.Current()
	key := search.KeyFor(q)

	if res, ok := s.cache.Get(snap.Version, key); ok {
		s.metrics.RecordSearch(time.Since(start), true)
		return res
	}

	res := snap.Search(q)
	s.cache.Put(snap.Version, key, res)
	s.metrics.RecordSearch(time.Since(start), false)
	return res
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.store.Current().Player(id)
}

// Clubs returns the distinct clubs of the current corpus.
func (s *Service) Clubs() []string { return s.store.Current().Clubs() }

// Nationalities returns the distinct nationalities of the current corpus.
func (s *Service) Nationalities() []string { return s.store.Current().Nationalities() }

// Leagues returns the distinct leagues of the current corpus.
func (s *Service) Leagues() []string { return s.store.Current().Leagues() }

// Count returns the size of the current corpus.
func (s *Service) Count() int { return s.store.Current().Len() }

// Ready reports whether a non-empty corpus has been published.
func (s *Service) Ready() bool { return s.Count() > 0 }

// Reload replaces the corpus from the source. On error the previous corpus
// stays live and the cache is left untouched.
func (s *Service) Reload(ctx context.Context) (int, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	logger := logging.FromContext(ctx, s.logger)

	batch, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.RecordReload(0, 0, err)
		logging.Error(logger, "player reload failed", err, logging.FieldCount, s.Count())
		return 0, err
	}

	snap := s.store.Replace(batch.Players, s.now())
	s.cache.Invalidate(snap.Version)
	s.metrics.RecordReload(snap.Len(), batch.Skipped, nil)

	logging.Info(logger, "player corpus replaced",
		logging.FieldCount, snap.Len(),
		logging.FieldSkipped, batch.Skipped,
		"corpus_version", snap.Version,
	)
	return snap.Len(), nil
}
