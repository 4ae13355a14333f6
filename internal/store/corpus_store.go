package store

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
	"github.com/preston-bernstein/lineup-service/internal/search"
)

// Snapshot is an immutable, versioned corpus. Everything derived from the
// players (normalized fields, id lookup, facet value lists) is built once here.
type Snapshot struct {
	Version  uint64
	LoadedAt time.Time

	index         *search.Index
	byID          map[string]int
	clubs         []string
	nationalities []string
	leagues       []string
}

// NewSnapshot builds a snapshot over items. The slice must not be modified afterwards.
func NewSnapshot(version uint64, loadedAt time.Time, items []players.Player) *Snapshot {
	byID := make(map[string]int, len(items))
	for i, p := range items {
		// First record wins for duplicate ids.
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = i
		}
	}
	return &Snapshot{
		Version:       version,
		LoadedAt:      loadedAt,
		index:         search.NewIndex(items),
		byID:          byID,
		clubs:         distinct(items, func(p players.Player) *string { return p.Club }),
		nationalities: distinct(items, func(p players.Player) *string { return p.Nationality }),
		leagues:       distinct(items, func(p players.Player) *string { return p.League }),
	}
}

func distinct(items []players.Player, field func(players.Player) *string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range items {
		v := field(p)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	sort.Strings(out)
	return out
}

// Search runs q against this snapshot only.
func (s *Snapshot) Search(q search.Query) search.Result {
	if s == nil {
		return (*search.Index)(nil).Search(q)
	}
	return s.index.Search(q)
}

// Players returns the corpus in load order. Callers must not modify it.
func (s *Snapshot) Players() []players.Player {
	if s == nil {
		return nil
	}
	return s.index.Players()
}

// Player looks up a record by id.
func (s *Snapshot) Player(id string) (players.Player, bool) {
	if s == nil {
		return players.Player{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.index.Players()[i], true
}

// Len returns the number of players.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.index.Len()
}

// CorpusStore publishes snapshots with a single atomic pointer swap.
// Readers never block and always see one complete snapshot.
type CorpusStore struct {
	current atomic.Pointer[Snapshot]
}

// NewCorpusStore constructs a store holding an empty version 0 snapshot.
func NewCorpusStore() *CorpusStore {
	s := &CorpusStore{}
	s.current.Store(NewSnapshot(0, time.Time{}, nil))
	return s
}

// Current returns the live snapshot. Use one snapshot for a whole request.
func (s *CorpusStore) Current() *Snapshot {
	return s.current.Load()
}

// Replace publishes items as the next version and returns the new snapshot.
// Concurrent callers must be serialized by the caller.
func (s *CorpusStore) Replace(items []players.Player, loadedAt time.Time) *Snapshot {
	next := NewSnapshot(s.Version()+1, loadedAt, items)
	s.current.Store(next)
	return next
}

// ListPlayers returns a copy of the current corpus.
func (s *CorpusStore) ListPlayers() []players.Player {
	src := s.Current().Players()
	out := make([]players.Player, len(src))
	copy(out, src)
	return out
}

// GetPlayer retrieves a player by id from the current snapshot.
func (s *CorpusStore) GetPlayer(id string) (players.Player, bool) {
	return s.Current().Player(id)
}

// Count returns the size of the current corpus.
func (s *CorpusStore) Count() int {
	return s.Current().Len()
}

// Version returns the version of the current snapshot.
func (s *CorpusStore) Version() uint64 {
	if snap := s.Current(); snap != nil {
		return snap.Version
	}
	return 0
}

// Clubs returns distinct club names of the current snapshot, sorted.
func (s *CorpusStore) Clubs() []string { return s.Current().Clubs() }

// Nationalities returns distinct nationalities of the current snapshot, sorted.
func (s *CorpusStore) Nationalities() []string { return s.Current().Nationalities() }

// Leagues returns distinct league names of the current snapshot, sorted.
func (s *CorpusStore) Leagues() []string { return s.Current().Leagues() }

// Clubs returns a copy of the distinct club names.
func (s *Snapshot) Clubs() []string {
	if s == nil {
		return []string{}
	}
	return cloneStrings(s.clubs)
}

// Nationalities returns a copy of the distinct nationalities.
func (s *Snapshot) Nationalities() []string {
	if s == nil {
		return []string{}
	}
	return cloneStrings(s.nationalities)
}

// Leagues returns a copy of the distinct league names.
func (s *Snapshot) Leagues() []string {
	if s == nil {
		return []string{}
	}
	return cloneStrings(s.leagues)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
