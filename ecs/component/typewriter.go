package component

// Typewriter cycles through phrases, typing then deleting them one rune at a
// time. Text holds the currently visible prefix.
type Typewriter struct {
	Phrases []string
	Phrase  int
	Pos     int
	Text    string

	// Deleting is true while runes are being removed.
	Deleting bool

	// Delays in update ticks.
	TypeDelay   int
	DeleteDelay int
	// HoldDelay is the pause at a fully typed phrase before deleting starts.
	HoldDelay int

	Timer int
	Hold  int
}

var TypewriterComponent = NewComponent[Typewriter]()
