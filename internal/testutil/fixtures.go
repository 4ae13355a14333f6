package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
)

// SamplePlayer builds a player with the given id and name and no optional fields.
func SamplePlayer(id, name string) players.Player {
	p, err := players.New(players.Attributes{ID: id, Name: name})
	if err != nil {
		panic(err)
	}
	return p
}

// SampleCorpus returns a small corpus spanning a few clubs, leagues and positions.
func SampleCorpus() []players.Player {
	attrs := []players.Attributes{
		{ID: "saka", Name: "Bukayo Saka", Positions: []string{"RW", "LW"}, Club: players.StringPtr("Arsenal"), Nationality: players.StringPtr("England"), League: players.StringPtr("Premier League"), Number: players.IntPtr(7)},
		{ID: "muller", Name: "Thomas Müller", Positions: []string{"CAM", "ST"}, Club: players.StringPtr("Bayern München"), Nationality: players.StringPtr("Germany"), League: players.StringPtr("Bundesliga"), Number: players.IntPtr(25)},
		{ID: "saliba", Name: "William Saliba", Positions: []string{"CB"}, Club: players.StringPtr("Arsenal"), Nationality: players.StringPtr("France"), League: players.StringPtr("Premier League"), Number: players.IntPtr(2)},
		{ID: "rudiger", Name: "Antonio Rüdiger", Positions: []string{"LCB"}, Club: players.StringPtr("Real Madrid"), Nationality: players.StringPtr("Germany"), League: players.StringPtr("LaLiga")},
	}
	out := make([]players.Player, 0, len(attrs))
	for _, a := range attrs {
		p, err := players.New(a)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}

// WritePlayersFile writes a {"players": [...]} document into dir and returns its path.
func WritePlayersFile(t *testing.T, dir, name string, entries ...map[string]any) string {
	t.Helper()
	if entries == nil {
		entries = []map[string]any{}
	}
	data, err := json.Marshal(map[string]any{"players": entries})
	if err != nil {
		t.Fatalf("failed to marshal players file: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write players file %s: %v", path, err)
	}
	return path
}
