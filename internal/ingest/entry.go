package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
)

// document is the on-disk shape written by the scraper.
type document struct {
	Players []json.RawMessage `json:"players"`
}

// entry is one scraped player record.
type entry struct {
	ID                 *scalar  `json:"id"`
	Name               *scalar  `json:"name"`
	ShortName          *scalar  `json:"shortName"`
	PrimaryPosition    *scalar  `json:"primaryPosition"`
	SecondaryPositions []scalar `json:"secondaryPositions"`
	Club               *scalar  `json:"club"`
	Nationality        *scalar  `json:"nationality"`
	League             *scalar  `json:"league"`
	PhotoURL           *scalar  `json:"photoUrl"`
	Number             *scalar  `json:"number"`
}

// scalar accepts a JSON string, number or boolean and keeps its text form.
// A JSON null leaves the pointer nil.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalar(v)
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", data)
	default:
		*s = scalar(data)
	}
	return nil
}

func (s *scalar) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func (s *scalar) text() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// number parses the shirt number; fractional values are truncated and values
// outside the int32 range are invalid.
func (s *scalar) number() (*int, error) {
	if s == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(string(*s))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt32+1 || f <= math.MinInt32-1 {
		return nil, fmt.Errorf("invalid number %q", raw)
	}
	n := int(f)
	return &n, nil
}

func (e entry) positions() []string {
	out := make([]string, 0, 1+len(e.SecondaryPositions))
	if e.PrimaryPosition != nil {
		out = append(out, e.PrimaryPosition.text())
	}
	for _, p := range e.SecondaryPositions {
		out = append(out, string(p))
	}
	return out
}

// toPlayer validates the entry and builds a Player.
func (e entry) toPlayer() (players.Player, error) {
	number, err := e.Number.number()
	if err != nil {
		return players.Player{}, err
	}
	return players.New(players.Attributes{
		ID:          e.ID.text(),
		Name:        e.Name.text(),
		DisplayName: e.ShortName.text(),
		Positions:   e.positions(),
		Club:        e.Club.ptr(),
		Nationality: e.Nationality.ptr(),
		League:      e.League.ptr(),
		PhotoURL:    e.PhotoURL.ptr(),
		Number:      number,
	})
}

func decodeEntry(raw json.RawMessage) (players.Player, error) {
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return players.Player{}, err
	}
	return e.toPlayer()
}
