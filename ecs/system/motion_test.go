package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

func newParticle(w *ecs.World, x, y, vx, vy float64) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.VelocityComponent, &component.Velocity{VX: vx, VY: vy})
	_ = ecs.Add(w, e, component.NodeComponent, &component.Node{Radius: 2})
	return e
}

func TestMotionReflectionInvariant(t *testing.T) {
	const (
		width  = 200.0
		height = 120.0
		steps  = 5000
	)
	w := ecs.NewWorld()
	motion := NewMotionSystem(FixedSurface{W: width, H: height})

	rng := rand.New(rand.NewSource(7))
	ents := make([]ecs.Entity, 0, 20)
	maxSpeed := 0.0
	for i := 0; i < 20; i++ {
		vx := (rng.Float64()*2 - 1) * 3
		vy := (rng.Float64()*2 - 1) * 3
		maxSpeed = math.Max(maxSpeed, math.Max(math.Abs(vx), math.Abs(vy)))
		ents = append(ents, newParticle(w, rng.Float64()*width, rng.Float64()*height, vx, vy))
	}

	for step := 0; step < steps; step++ {
		motion.Update(w)
		for _, e := range ents {
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			// Reflection allows at most one tick of overshoot before the
			// velocity turns the particle back.
			if tr.X < -maxSpeed || tr.X > width+maxSpeed ||
				tr.Y < -maxSpeed || tr.Y > height+maxSpeed {
				t.Fatalf("step %d: particle escaped bounds: (%.2f, %.2f)", step, tr.X, tr.Y)
			}
		}
	}
}

func TestMotionFlipsVelocityOncePerCrossing(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"right_wall", 199, 60, 2, 0},
		{"left_wall", 1, 60, -2, 0},
		{"floor", 100, 119, 0, 2},
		{"ceiling", 100, 1, 0, -2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			motion := NewMotionSystem(FixedSurface{W: 200, H: 120})
			e := newParticle(w, c.x, c.y, c.vx, c.vy)

			flips := 0
			prevVX, prevVY := c.vx, c.vy
			for i := 0; i < 10; i++ {
				motion.Update(w)
				v, _ := ecs.Get(w, e, component.VelocityComponent)
				if math.Signbit(v.VX) != math.Signbit(prevVX) && v.VX != 0 {
					flips++
				}
				if math.Signbit(v.VY) != math.Signbit(prevVY) && v.VY != 0 {
					flips++
				}
				prevVX, prevVY = v.VX, v.VY
			}
			if flips != 1 {
				t.Fatalf("expected exactly one sign flip for one crossing, got %d", flips)
			}

			// After the flip the particle must be heading back inside.
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			if tr.X < 0 || tr.X > 200 || tr.Y < 0 || tr.Y > 120 {
				t.Fatalf("particle did not return inside bounds: (%.2f, %.2f)", tr.X, tr.Y)
			}
		})
	}
}

func TestMotionSpeedPreserved(t *testing.T) {
	w := ecs.NewWorld()
	motion := NewMotionSystem(FixedSurface{W: 100, H: 100})
	e := newParticle(w, 99, 50, 1.5, -0.5)

	for i := 0; i < 500; i++ {
		motion.Update(w)
	}
	v, _ := ecs.Get(w, e, component.VelocityComponent)
	if math.Abs(v.VX) != 1.5 || math.Abs(v.VY) != 0.5 {
		t.Fatalf("reflection must preserve speed, got (%.3f, %.3f)", v.VX, v.VY)
	}
}
