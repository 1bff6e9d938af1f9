package component

// Reveal eases a section's content in when it becomes active. Progress runs
// 0 to 1 and is monotonic while Active; deactivating resets it.
type Reveal struct {
	Active   bool
	Progress float64
	// Speed is progress gained per tick.
	Speed float64
}

var RevealComponent = NewComponent[Reveal]()
