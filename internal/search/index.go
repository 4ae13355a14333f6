package search

import (
	"sort"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
)

// Index pairs a corpus with its precomputed normalized fields. It is never
// mutated after construction, so any number of searches may share it.
type Index struct {
	players []players.Player
	fields  []Fields
}

// NewIndex normalizes every player once. The slice is owned by the index afterwards.
func NewIndex(items []players.Player) *Index {
	fields := make([]Fields, len(items))
	for i := range items {
		fields[i] = FieldsFor(items[i])
	}
	return &Index{players: items, fields: fields}
}

// Len returns the corpus size.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.players)
}

// Players returns the corpus in insertion order. Callers must not modify it.
func (ix *Index) Players() []players.Player {
	if ix == nil {
		return nil
	}
	return ix.players
}

// Search runs filter, match, rank and paginate over the index.
// Without free text the matches keep corpus order.
func (ix *Index) Search(q Query) Result {
	q = q.Clamped()
	if ix == nil {
		return NewResult(nil, q.Page, q.Size, 0)
	}

	facets := CompileFacets(q)
	text := CompileText(q.Text)

	matched := make([]int, 0, len(ix.players))
	for i := range ix.fields {
		f := &ix.fields[i]
		if facets.Matches(f) && text.Matches(f) {
			matched = append(matched, i)
		}
	}

	if text.Present() {
		matched = ix.rank(matched, text.Text())
	}

	page, total := Paginate(matched, q.Page, q.Size)
	items := make([]players.Player, len(page))
	for i, idx := range page {
		items[i] = ix.players[idx]
	}
	return NewResult(items, q.Page, q.Size, total)
}

type scoredHit struct {
	idx   int
	score int
}

// rank orders hits by descending score; equal scores keep corpus order.
func (ix *Index) rank(matched []int, normalizedQuery string) []int {
	hits := make([]scoredHit, len(matched))
	for i, idx := range matched {
		hits[i] = scoredHit{idx: idx, score: Score(&ix.fields[idx], normalizedQuery)}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	for i, h := range hits {
		matched[i] = h.idx
	}
	return matched
}
