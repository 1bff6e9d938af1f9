package component

// TTL is a frame-based time-to-live. Systems add this to short-lived
// entities (click sparks) to have them destroyed after the given number of
// update ticks.
type TTL struct {
	// Frames remaining for the TTL (in update ticks)
	Frames int
	// Total frames the TTL started with; renderers use Frames/Total to fade.
	Total int
}

var TTLComponent = NewComponent[TTL]()
