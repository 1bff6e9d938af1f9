package system

import (
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

// MotionSystem advances every particle by its velocity once per tick (Euler,
// unit timestep) and reflects velocities at the surface bounds.
type MotionSystem struct {
	surface Surface
}

func NewMotionSystem(surface Surface) *MotionSystem {
	return &MotionSystem{surface: surface}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if s == nil || s.surface == nil {
		return
	}
	width, height := s.surface.Size()

	ecs.ForEach2(w, component.TransformComponent, component.VelocityComponent, func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		t.X += v.VX
		t.Y += v.VY

		// Reflect only when still heading out, so one crossing flips the
		// sign exactly once. Position is not clamped; a particle may render
		// one frame outside the bounds before turning back.
		if (t.X < 0 && v.VX < 0) || (t.X > width && v.VX > 0) {
			v.VX = -v.VX
		}
		if (t.Y < 0 && v.VY < 0) || (t.Y > height && v.VY > 0) {
			v.VY = -v.VY
		}
	})
}
