package system

import (
	"math"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

// PointerForceSystem pushes particles away from the pointer. Displacement is
// strongest at the cursor and falls linearly to zero at the influence
// radius; the off-surface sentinel position therefore never moves anything.
type PointerForceSystem struct {
	pointer PointerSource
	radius  float64
	scale   float64
}

func NewPointerForceSystem(pointer PointerSource, spec prefabs.FieldSpec) *PointerForceSystem {
	return &PointerForceSystem{
		pointer: pointer,
		radius:  spec.InfluenceRadius,
		scale:   spec.ForceScale,
	}
}

func (s *PointerForceSystem) Update(w *ecs.World) {
	if s == nil || s.pointer == nil || s.radius <= 0 {
		return
	}
	px, py := s.pointer.Pointer()

	ecs.ForEach2(w, component.TransformComponent, component.NodeComponent, func(e ecs.Entity, t *component.Transform, _ *component.Node) {
		dx, dy := t.X-px, t.Y-py
		mag := Displacement(math.Hypot(dx, dy), s.radius, s.scale)
		if mag <= 0 {
			return
		}
		d := math.Hypot(dx, dy)
		if d < 1e-9 {
			// Pointer exactly on the particle: push along +x rather than
			// dividing by zero.
			dx, dy, d = 1, 0, 1
		}
		t.X += dx / d * mag
		t.Y += dy / d * mag
	})
}

// Displacement returns the repulsion magnitude for a pointer at distance d.
// Zero at or beyond the radius, rising linearly to scale at distance zero.
func Displacement(d, radius, scale float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (radius - d) / radius * scale
}
