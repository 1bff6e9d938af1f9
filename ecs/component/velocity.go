package component

// Velocity is the per-tick drift of a field node, in pixels per tick.
type Velocity struct {
	VX float64
	VY float64
}

var VelocityComponent = NewComponent[Velocity]()
