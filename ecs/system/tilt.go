package system

import (
	"github.com/Abhishek10745/folio/common"
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

// TiltSystem skews project cards toward the pointer while it hovers them,
// lerping back flat when it leaves.
type TiltSystem struct {
	pointer PointerSource
}

func NewTiltSystem(pointer PointerSource) *TiltSystem {
	return &TiltSystem{pointer: pointer}
}

const tiltLerp = 0.18

func (s *TiltSystem) Update(w *ecs.World) {
	if s == nil || s.pointer == nil {
		return
	}
	px, py := s.pointer.Pointer()

	ecs.ForEach2(w, component.TransformComponent, component.TiltComponent, func(e ecs.Entity, t *component.Transform, tilt *component.Tilt) {
		var targetX, targetY float64
		dx := px - t.X
		dy := py - t.Y
		if tilt.HalfW > 0 && tilt.HalfH > 0 &&
			dx >= -tilt.HalfW && dx <= tilt.HalfW &&
			dy >= -tilt.HalfH && dy <= tilt.HalfH {
			targetX = common.Clamp(dx/tilt.HalfW, -1, 1) * tilt.Strength
			targetY = common.Clamp(dy/tilt.HalfH, -1, 1) * tilt.Strength
		}
		tilt.SkewX = common.Lerp(tilt.SkewX, targetX, tiltLerp)
		tilt.SkewY = common.Lerp(tilt.SkewY, targetY, tiltLerp)
	})
}
