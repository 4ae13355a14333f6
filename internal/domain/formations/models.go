package formations

// pitchExtent is the coordinate range on both axes; positions are percentages.
const pitchExtent = 100

// Position is a slot on the pitch expressed in percent of width (X) and height (Y).
type Position struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Role  string  `json:"role,omitempty"`
}

// FlipHorizontal mirrors the position across the vertical axis.
func (p Position) FlipHorizontal() Position {
	p.X = pitchExtent - p.X
	return p
}

// FlipVertical mirrors the position across the halfway line.
func (p Position) FlipVertical() Position {
	p.Y = pitchExtent - p.Y
	return p
}

// Formation is a named set of eleven positions.
type Formation struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Positions   []Position `json:"positions"`
	Category    string     `json:"category"`
}

// FlipHorizontal returns a mirrored copy; the receiver is left untouched.
func (f Formation) FlipHorizontal() Formation {
	return f.mapPositions(Position.FlipHorizontal)
}

// FlipVertical returns a copy mirrored across the halfway line.
func (f Formation) FlipVertical() Formation {
	return f.mapPositions(Position.FlipVertical)
}

// Oriented applies the requested flips in horizontal-then-vertical order.
func (f Formation) Oriented(flipH, flipV bool) Formation {
	out := f.mapPositions(func(p Position) Position { return p })
	if flipH {
		out = out.FlipHorizontal()
	}
	if flipV {
		out = out.FlipVertical()
	}
	return out
}

func (f Formation) mapPositions(fn func(Position) Position) Formation {
	positions := make([]Position, len(f.Positions))
	for i, p := range f.Positions {
		positions[i] = fn(p)
	}
	f.Positions = positions
	return f
}
