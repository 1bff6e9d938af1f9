package component

// Chip is a skill badge simulated as a dynamic circle body in the skills
// playground. The physics system owns the backing body; the chip only
// carries what the renderer needs.
type Chip struct {
	Label  string
	Radius float64
	// Hue index into the theme palette.
	Hue int
}

var ChipComponent = NewComponent[Chip]()
