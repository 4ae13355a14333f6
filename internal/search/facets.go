package search

import "strings"

// facet is one compiled optional filter. A zero facet is inactive and always passes.
type facet struct {
	active bool
	value  string
}

func newFacet(raw string, fold func(string) string) facet {
	if strings.TrimSpace(raw) == "" {
		return facet{}
	}
	return facet{active: true, value: fold(raw)}
}

// Facets is the compiled set of club, nationality, league and position filters.
// It is comparable so it can take part in cache keys.
type Facets struct {
	club        facet
	nationality facet
	league      facet
	position    facet
}

// CompileFacets prepares the filters of q for repeated evaluation.
func CompileFacets(q Query) Facets {
	return Facets{
		club:        newFacet(q.Club, Normalize),
		nationality: newFacet(q.Nationality, Normalize),
		league:      newFacet(q.League, Normalize),
		position:    newFacet(q.Position, strings.ToLower),
	}
}

// Active reports whether any facet narrows the corpus.
func (fs Facets) Active() bool {
	return fs.club.active || fs.nationality.active || fs.league.active || fs.position.active
}

// Matches ANDs every active facet against f.
func (fs Facets) Matches(f *Fields) bool {
	return fs.club.containedIn(f.Club, f.HasClub) &&
		fs.nationality.containedIn(f.Nationality, f.HasNationality) &&
		fs.league.containedIn(f.League, f.HasLeague) &&
		fs.position.anyContainedIn(f.Positions)
}

func (fc facet) containedIn(field string, present bool) bool {
	if !fc.active {
		return true
	}
	return present && strings.Contains(field, fc.value)
}

func (fc facet) anyContainedIn(codes []string) bool {
	if !fc.active {
		return true
	}
	for _, code := range codes {
		if strings.Contains(code, fc.value) {
			return true
		}
	}
	return false
}
