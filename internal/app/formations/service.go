package formations

import (
	"strings"

	"github.com/preston-bernstein/lineup-service/internal/domain/formations"
)

// Service serves the fixed formation catalog.
type Service struct {
	catalog []formations.Formation
	byID    map[string]int
}

// NewService constructs a Service over the built-in catalog.
func NewService() *Service {
	return newService(formations.Catalog())
}

func newService(catalog []formations.Formation) *Service {
	byID := make(map[string]int, len(catalog))
	for i, f := range catalog {
		byID[f.ID] = i
	}
	return &Service{catalog: catalog, byID: byID}
}

// All returns every formation in catalog order.
func (s *Service) All() []formations.Formation {
	out := make([]formations.Formation, len(s.catalog))
	for i, f := range s.catalog {
		out[i] = f.Oriented(false, false)
	}
	return out
}

// ByID returns one formation, optionally mirrored.
func (s *Service) ByID(id string, flipH, flipV bool) (formations.Formation, bool) {
	i, ok := s.byID[id]
	if !ok {
		return formations.Formation{}, false
	}
	return s.catalog[i].Oriented(flipH, flipV), true
}

// ByCategory returns the formations of a category, matched case-insensitively.
func (s *Service) ByCategory(category string) []formations.Formation {
	out := make([]formations.Formation, 0)
	for _, f := range s.catalog {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f.Oriented(false, false))
		}
	}
	return out
}
