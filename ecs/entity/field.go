package entity

import (
	"math/rand"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

// NewField batch-creates the background particles for a surface of the given
// size. The count tier comes from the spec (mobile vs desktop width).
func NewField(w *ecs.World, spec prefabs.FieldSpec, width, height float64, rng *rand.Rand) []ecs.Entity {
	count := spec.Count(width)
	out := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		})
		_ = ecs.Add(w, e, component.VelocityComponent, &component.Velocity{
			VX: (rng.Float64()*2 - 1) * spec.DriftSpeed,
			VY: (rng.Float64()*2 - 1) * spec.DriftSpeed,
		})
		_ = ecs.Add(w, e, component.NodeComponent, &component.Node{
			Radius: spec.NodeRadius,
		})
		out = append(out, e)
	}
	return out
}

// NewSpark creates a short-lived glow dot at a click position.
func NewSpark(w *ecs.World, x, y, radius float64, frames int) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.NodeComponent, &component.Node{Radius: radius, Glow: 1})
	_ = ecs.Add(w, e, component.TTLComponent, &component.TTL{Frames: frames, Total: frames})
	return e
}
