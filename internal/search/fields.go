package search

import (
	"strings"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
)

// Fields holds the normalized searchable values of one player.
// They are computed once per corpus snapshot and shared by every request.
type Fields struct {
	Name        string
	DisplayName string
	Club        string
	Nationality string
	League      string
	// Positions are lower-cased only; position codes carry no diacritics.
	Positions []string

	HasClub        bool
	HasNationality bool
	HasLeague      bool

	nameWords    []string
	displayWords []string
}

// FieldsFor normalizes the searchable values of p.
func FieldsFor(p players.Player) Fields {
	f := Fields{
		Name:           Normalize(p.Name),
		DisplayName:    Normalize(p.DisplayName),
		Club:           Normalize(players.Value(p.Club)),
		Nationality:    Normalize(players.Value(p.Nationality)),
		League:         Normalize(players.Value(p.League)),
		Positions:      make([]string, len(p.Positions)),
		HasClub:        p.Club != nil,
		HasNationality: p.Nationality != nil,
		HasLeague:      p.League != nil,
	}
	for i, code := range p.Positions {
		f.Positions[i] = strings.ToLower(code)
	}
	f.nameWords = strings.Fields(f.Name)
	f.displayWords = strings.Fields(f.DisplayName)
	return f
}

// startsAnyWord reports whether term is a prefix of any of the words.
func startsAnyWord(words []string, term string) bool {
	if term == "" {
		return false
	}
	for _, w := range words {
		if strings.HasPrefix(w, term) {
			return true
		}
	}
	return false
}
