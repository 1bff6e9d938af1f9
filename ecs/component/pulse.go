package component

// Pulse is a decaying signal riding on a field node. While present the node
// and its connections render brighter; the pulse system removes it when
// Frames reaches zero.
type Pulse struct {
	// Frames remaining (in update ticks).
	Frames int
	// Total frames the pulse started with.
	Total int
}

var PulseComponent = NewComponent[Pulse]()
