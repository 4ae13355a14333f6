package search

import "github.com/preston-bernstein/lineup-service/internal/domain/players"

const (
	// DefaultPageSize applies whenever the requested size is out of range.
	DefaultPageSize = 20
	// MaxPageSize is the largest page a caller may request.
	MaxPageSize = 50
)

// Query is one search request: optional free text, optional facets, and a page.
type Query struct {
	Text        string
	Club        string
	Nationality string
	League      string
	Position    string
	Page        int
	Size        int
}

// Clamped returns q with page and size forced into range. Out-of-range values
// are corrected rather than rejected.
func (q Query) Clamped() Query {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 || q.Size > MaxPageSize {
		q.Size = DefaultPageSize
	}
	return q
}

// Result is one page of matches plus totals.
type Result struct {
	Items      []players.Player `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// NewResult assembles a Result and derives the page count.
func NewResult(items []players.Player, page, size, total int) Result {
	if items == nil {
		items = []players.Player{}
	}
	return Result{
		Items:      items,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
}
