package component

// Node marks an entity as a particle of the background field.
type Node struct {
	// Radius of the drawn dot in pixels.
	Radius float64
	// Glow is extra brightness in [0,1] applied by pulse propagation. It is
	// written by the pulse system every tick and read by the renderers.
	Glow float64
}

var NodeComponent = NewComponent[Node]()
