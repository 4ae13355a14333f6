package players

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	// displayNameMaxRunes is the longest surname shown untouched on the pitch.
	displayNameMaxRunes = 12
	// displayNameKeepRunes is how much of a longer surname survives truncation.
	displayNameKeepRunes = 11
	displayNameEllipsis  = "."
)

// ErrMissingName is returned when a player is constructed without a usable name.
var ErrMissingName = errors.New("player name required")

// Player is the immutable player record served by the search API.
// Optional fields are pointers so that absent and empty values stay distinct.
type Player struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Positions   []string `json:"positions"`
	Club        *string  `json:"club"`
	Nationality *string  `json:"nationality"`
	League      *string  `json:"league"`
	PhotoURL    *string  `json:"photoUrl"`
	Number      *int     `json:"number"`
}

// Attributes carries the raw values a Player is built from.
type Attributes struct {
	ID          string
	Name        string
	DisplayName string
	Positions   []string
	Club        *string
	Nationality *string
	League      *string
	PhotoURL    *string
	Number      *int
}

// New builds a Player, generating an ID and deriving the display name when absent.
func New(attrs Attributes) (Player, error) {
	if strings.TrimSpace(attrs.Name) == "" {
		return Player{}, ErrMissingName
	}

	id := attrs.ID
	if id == "" {
		id = uuid.NewString()
	}
	displayName := attrs.DisplayName
	if displayName == "" {
		displayName = DisplayNameFor(attrs.Name)
	}
	positions := make([]string, len(attrs.Positions))
	copy(positions, attrs.Positions)

	return Player{
		ID:          id,
		Name:        attrs.Name,
		DisplayName: displayName,
		Positions:   positions,
		Club:        attrs.Club,
		Nationality: attrs.Nationality,
		League:      attrs.League,
		PhotoURL:    attrs.PhotoURL,
		Number:      attrs.Number,
	}, nil
}

// DisplayNameFor derives the short pitch label from a full name.
// Single-token names pass through; longer names reduce to the surname,
// truncated when it would not fit under a player marker.
func DisplayNameFor(fullName string) string {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	last := []rune(parts[len(parts)-1])
	if len(last) > displayNameMaxRunes {
		return string(last[:displayNameKeepRunes]) + displayNameEllipsis
	}
	return string(last)
}

// Value dereferences an optional field, returning "" when absent.
func Value(field *string) string {
	if field == nil {
		return ""
	}
	return *field
}

// StringPtr is a small helper for building optional fields.
func StringPtr(v string) *string {
	return &v
}

// IntPtr is a small helper for building optional numbers.
func IntPtr(v int) *int {
	return &v
}
