package export

import (
	"fmt"
	"strings"
)

const (
	markingStroke      = "rgba(255,255,255,0.6)"
	markingStrokeWidth = 2
	pitchPadding       = 20
	playerRadius       = 25
	labelOffset        = 40
	fallbackJersey     = "#ff0000"
)

var pitchBackgrounds = map[string]string{
	"dark":    "#1a472a",
	"light":   "#4a8f4a",
	"minimal": "#2d5a2d",
}

const defaultPitchBackground = "#2e7d32"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSVG draws the pitch and one marker per player as a standalone SVG document.
// Players without custom coordinates are placed at the centre spot.
func RenderSVG(req Request) string {
	req = req.WithDefaults()
	w, h := req.Width, req.Height
	settings := req.Settings

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`, w, h, w, h)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, w, h, pitchBackground(settings.PitchStyle))
	writeMarkings(&b, w, h)

	for _, p := range req.Players {
		x, y := coord(p.CustomX), coord(p.CustomY)
		px := int(x * float64(w) / 100)
		py := int(y * float64(h) / 100)

		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="white" stroke-width="2"/>`,
			px, py, playerRadius, xmlEscaper.Replace(jerseyColor(p, settings)))

		if settings.ShowNames {
			fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="white" font-size="12" font-family="Arial">%s</text>`,
				px, py+labelOffset, xmlEscaper.Replace(label(p)))
		}
	}

	b.WriteString("</svg>")
	return b.String()
}

func writeMarkings(b *strings.Builder, w, h int) {
	centerY := h / 2
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		pitchPadding, pitchPadding, w-2*pitchPadding, h-2*pitchPadding, markingStroke, markingStrokeWidth)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`,
		pitchPadding, centerY, w-pitchPadding, centerY, markingStroke, markingStrokeWidth)
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		w/2, centerY, min(w, h)/8, markingStroke, markingStrokeWidth)
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="4" fill="%s"/>`, w/2, centerY, markingStroke)

	boxW, boxH := w/3, h/6
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		(w-boxW)/2, pitchPadding, boxW, boxH, markingStroke, markingStrokeWidth)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		(w-boxW)/2, h-pitchPadding-boxH, boxW, boxH, markingStroke, markingStrokeWidth)
}

func pitchBackground(style string) string {
	if bg, ok := pitchBackgrounds[style]; ok {
		return bg
	}
	return defaultPitchBackground
}

func coord(v *float64) float64 {
	if v == nil {
		return 50
	}
	return *v
}

func jerseyColor(p LineupPlayer, settings *LineupSettings) string {
	if p.JerseyColor != nil {
		return *p.JerseyColor
	}
	if settings != nil && settings.JerseyColor != "" {
		return settings.JerseyColor
	}
	return fallbackJersey
}

func label(p LineupPlayer) string {
	if p.DisplayName != nil {
		return *p.DisplayName
	}
	if p.Name != nil {
		return *p.Name
	}
	return ""
}
