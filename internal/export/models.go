package export

import "errors"

const (
	DefaultFormat = "png"
	DefaultWidth  = 1080
	DefaultHeight = 1350

	AspectSquare    = "square"
	AspectPortrait  = "portrait"
	AspectLandscape = "landscape"
)

// ErrNoPlayers is returned when an export is requested for an empty lineup.
var ErrNoPlayers = errors.New("no players in lineup")

// LineupPlayer is one player placed on the pitch. Coordinates are percentages.
type LineupPlayer struct {
	PlayerID    string   `json:"playerId"`
	PositionID  string   `json:"positionId"`
	Name        *string  `json:"name"`
	DisplayName *string  `json:"displayName"`
	PhotoURL    *string  `json:"photoUrl"`
	Number      *int     `json:"number"`
	CustomX     *float64 `json:"customX"`
	CustomY     *float64 `json:"customY"`
	JerseyColor *string  `json:"jerseyColor"`
}

// LineupSettings controls how a lineup is drawn.
type LineupSettings struct {
	PitchStyle        string `json:"pitchStyle"`
	JerseyColor       string `json:"jerseyColor"`
	ShowPhotos        bool   `json:"showPhotos"`
	ShowNames         bool   `json:"showNames"`
	ShowNumbers       bool   `json:"showNumbers"`
	ShowBranding      bool   `json:"showBranding"`
	AspectRatio       string `json:"aspectRatio"`
	FlippedHorizontal bool   `json:"flippedHorizontal"`
	FlippedVertical   bool   `json:"flippedVertical"`
}

// DefaultLineupSettings is applied when a request carries no settings.
func DefaultLineupSettings() LineupSettings {
	return LineupSettings{
		PitchStyle:  "grass",
		JerseyColor: "#FF0000",
		ShowPhotos:  true,
		ShowNames:   true,
		ShowNumbers: true,
		AspectRatio: AspectPortrait,
	}
}

// Request describes a lineup to export.
type Request struct {
	FormationID string          `json:"formationId"`
	Players     []LineupPlayer  `json:"players"`
	Settings    *LineupSettings `json:"settings"`
	Format      string          `json:"format"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
}

// WithDefaults fills in format, size and settings where the caller left them out.
func (r Request) WithDefaults() Request {
	if r.Format == "" {
		r.Format = DefaultFormat
	}
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	if r.Settings == nil {
		s := DefaultLineupSettings()
		r.Settings = &s
	}
	return r
}

// Metadata describes the image the client should produce.
type Metadata struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// PrepareResponse is the reply to an export preparation request.
type PrepareResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Metadata *Metadata `json:"metadata"`
}
