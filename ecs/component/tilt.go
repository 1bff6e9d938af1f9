package component

// Tilt skews a card toward the pointer. The system writes SkewX/SkewY each
// tick, lerping toward the pointer-derived target.
type Tilt struct {
	// Half extents of the card the tilt reacts over.
	HalfW float64
	HalfH float64
	// Strength scales the maximum skew.
	Strength float64

	SkewX float64
	SkewY float64
}

var TiltComponent = NewComponent[Tilt]()
