package component

// Scramble reveals Target left to right while the unrevealed tail churns
// through random glyphs. Done flips once the whole string is locked in.
type Scramble struct {
	Target   string
	Revealed int
	Text     string
	Done     bool

	// Delay in ticks between locking in consecutive runes.
	Delay int
	Timer int
}

var ScrambleComponent = NewComponent[Scramble]()
