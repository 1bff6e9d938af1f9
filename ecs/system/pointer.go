package system

// PointerSource reports the current pointer position in surface
// coordinates. When no pointer is active it returns the sentinel position,
// which is far enough off any surface that every interaction radius misses.
type PointerSource interface {
	Pointer() (x, y float64)
}

// ClickSource reports a click edge for the current tick.
type ClickSource interface {
	Clicked() (x, y float64, ok bool)
}

// Surface reports the current render surface size in pixels.
type Surface interface {
	Size() (w, h float64)
}

// Pointer sentinel used when the cursor is inactive or off-surface.
const (
	SentinelX = -9999
	SentinelY = -9999
)

// FixedSurface is a Surface with a constant size, used by tests and the
// validation tool.
type FixedSurface struct {
	W, H float64
}

func (s FixedSurface) Size() (float64, float64) {
	return s.W, s.H
}

// FixedPointer is a PointerSource pinned to one position.
type FixedPointer struct {
	X, Y float64
}

func (p FixedPointer) Pointer() (float64, float64) {
	return p.X, p.Y
}

// FixedClicks is a ClickSource reporting one canned click.
type FixedClicks struct {
	X, Y float64
	Ok   bool
}

func (c FixedClicks) Clicked() (float64, float64, bool) {
	return c.X, c.Y, c.Ok
}

// FilteredClicks passes clicks through only when the allow func accepts the
// position. UI surfaces and the chip playground claim their clicks this way
// so the field does not also react to them.
type FilteredClicks struct {
	src   ClickSource
	allow func(x, y float64) bool
}

func NewFilteredClicks(src ClickSource, allow func(x, y float64) bool) *FilteredClicks {
	return &FilteredClicks{src: src, allow: allow}
}

func (f *FilteredClicks) Clicked() (float64, float64, bool) {
	if f == nil || f.src == nil {
		return 0, 0, false
	}
	x, y, ok := f.src.Clicked()
	if !ok || (f.allow != nil && !f.allow(x, y)) {
		return x, y, false
	}
	return x, y, true
}
