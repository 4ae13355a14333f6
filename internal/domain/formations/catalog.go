package formations

// Formation categories used by the lineup builder's filter tabs.
const (
	CategoryAttacking = "attacking"
	CategoryBalanced  = "balanced"
	CategoryDefensive = "defensive"
)

func pos(id, label string, x, y float64) Position {
	return Position{ID: id, Label: label, X: x, Y: y}
}

func formation(id, category string, positions ...Position) Formation {
	return Formation{ID: id, Name: id, DisplayName: id, Positions: positions, Category: category}
}

// Catalog returns the built-in formations in display order. Each call returns fresh slices.
func Catalog() []Formation {
	return []Formation{
		formation("4-3-3", CategoryAttacking,
			pos("gk", "GK", 50, 92),
			pos("lb", "LB", 15, 75),
			pos("lcb", "CB", 35, 78),
			pos("rcb", "CB", 65, 78),
			pos("rb", "RB", 85, 75),
			pos("lcm", "CM", 30, 55),
			pos("cm", "CM", 50, 50),
			pos("rcm", "CM", 70, 55),
			pos("lw", "LW", 15, 25),
			pos("st", "ST", 50, 18),
			pos("rw", "RW", 85, 25),
		),
		formation("4-2-3-1", CategoryBalanced,
			pos("gk", "GK", 50, 92),
			pos("lb", "LB", 15, 75),
			pos("lcb", "CB", 35, 78),
			pos("rcb", "CB", 65, 78),
			pos("rb", "RB", 85, 75),
			pos("ldm", "CDM", 35, 58),
			pos("rdm", "CDM", 65, 58),
			pos("lam", "LAM", 20, 38),
			pos("cam", "CAM", 50, 35),
			pos("ram", "RAM", 80, 38),
			pos("st", "ST", 50, 18),
		),
		formation("4-4-2", CategoryBalanced,
			pos("gk", "GK", 50, 92),
			pos("lb", "LB", 15, 75),
			pos("lcb", "CB", 35, 78),
			pos("rcb", "CB", 65, 78),
			pos("rb", "RB", 85, 75),
			pos("lm", "LM", 15, 50),
			pos("lcm", "CM", 35, 52),
			pos("rcm", "CM", 65, 52),
			pos("rm", "RM", 85, 50),
			pos("lst", "ST", 35, 20),
			pos("rst", "ST", 65, 20),
		),
		formation("3-5-2", CategoryBalanced,
			pos("gk", "GK", 50, 92),
			pos("lcb", "CB", 25, 78),
			pos("cb", "CB", 50, 80),
			pos("rcb", "CB", 75, 78),
			pos("lwb", "LWB", 10, 55),
			pos("lcm", "CM", 30, 52),
			pos("cdm", "CDM", 50, 58),
			pos("rcm", "CM", 70, 52),
			pos("rwb", "RWB", 90, 55),
			pos("lst", "ST", 35, 20),
			pos("rst", "ST", 65, 20),
		),
		formation("4-1-4-1", CategoryDefensive,
			pos("gk", "GK", 50, 92),
			pos("lb", "LB", 15, 75),
			pos("lcb", "CB", 35, 78),
			pos("rcb", "CB", 65, 78),
			pos("rb", "RB", 85, 75),
			pos("cdm", "CDM", 50, 60),
			pos("lm", "LM", 15, 42),
			pos("lcm", "CM", 35, 45),
			pos("rcm", "CM", 65, 45),
			pos("rm", "RM", 85, 42),
			pos("st", "ST", 50, 18),
		),
		formation("5-3-2", CategoryDefensive,
			pos("gk", "GK", 50, 92),
			pos("lwb", "LWB", 10, 68),
			pos("lcb", "CB", 28, 78),
			pos("cb", "CB", 50, 80),
			pos("rcb", "CB", 72, 78),
			pos("rwb", "RWB", 90, 68),
			pos("lcm", "CM", 30, 50),
			pos("cm", "CM", 50, 48),
			pos("rcm", "CM", 70, 50),
			pos("lst", "ST", 35, 20),
			pos("rst", "ST", 65, 20),
		),
		formation("4-3-1-2", CategoryAttacking,
			pos("gk", "GK", 50, 92),
			pos("lb", "LB", 15, 75),
			pos("lcb", "CB", 35, 78),
			pos("rcb", "CB", 65, 78),
			pos("rb", "RB", 85, 75),
			pos("lcm", "CM", 30, 55),
			pos("cdm", "CDM", 50, 60),
			pos("rcm", "CM", 70, 55),
			pos("cam", "CAM", 50, 38),
			pos("lst", "ST", 35, 20),
			pos("rst", "ST", 65, 20),
		),
		formation("3-4-3", CategoryAttacking,
			pos("gk", "GK", 50, 92),
			pos("lcb", "CB", 25, 78),
			pos("cb", "CB", 50, 80),
			pos("rcb", "CB", 75, 78),
			pos("lm", "LM", 15, 50),
			pos("lcm", "CM", 38, 52),
			pos("rcm", "CM", 62, 52),
			pos("rm", "RM", 85, 50),
			pos("lw", "LW", 20, 25),
			pos("st", "ST", 50, 18),
			pos("rw", "RW", 80, 25),
		),
	}
}
