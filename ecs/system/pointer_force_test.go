package system

import (
	"testing"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

func fieldSpec() prefabs.FieldSpec {
	spec := prefabs.DefaultFieldSpec()
	spec.InfluenceRadius = 100
	spec.ForceScale = 3
	return spec
}

func TestDisplacementProfile(t *testing.T) {
	const (
		radius = 100.0
		scale  = 3.0
	)

	cases := []struct {
		name string
		d    float64
		want float64
	}{
		{"at_pointer", 0, scale},
		{"beyond_radius", 150, 0},
		{"at_radius", 100, 0},
		{"half_radius", 50, scale / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Displacement(c.d, radius, scale)
			if got != c.want {
				t.Fatalf("Displacement(%v) = %v, want %v", c.d, got, c.want)
			}
		})
	}

	t.Run("strictly_decreasing_below_radius", func(t *testing.T) {
		prev := Displacement(0, radius, scale)
		for d := 1.0; d < radius; d++ {
			cur := Displacement(d, radius, scale)
			if cur >= prev {
				t.Fatalf("displacement not strictly decreasing at d=%v: %v >= %v", d, cur, prev)
			}
			prev = cur
		}
	})
}

func TestPointerForcePushesAway(t *testing.T) {
	w := ecs.NewWorld()
	e := newParticle(w, 60, 50, 0, 0)
	force := NewPointerForceSystem(FixedPointer{X: 50, Y: 50}, fieldSpec())

	force.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X <= 60 {
		t.Fatalf("particle should be pushed away from the pointer, x=%v", tr.X)
	}
	if tr.Y != 50 {
		t.Fatalf("push must be along the pointer axis, y=%v", tr.Y)
	}
}

func TestPointerSentinelMovesNothing(t *testing.T) {
	w := ecs.NewWorld()
	ents := []ecs.Entity{
		newParticle(w, 0, 0, 0, 0),
		newParticle(w, 100, 100, 0, 0),
		newParticle(w, -5, 3, 0, 0),
	}
	force := NewPointerForceSystem(FixedPointer{X: SentinelX, Y: SentinelY}, fieldSpec())

	force.Update(w)

	want := [][2]float64{{0, 0}, {100, 100}, {-5, 3}}
	for i, e := range ents {
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if tr.X != want[i][0] || tr.Y != want[i][1] {
			t.Fatalf("particle %d moved under sentinel pointer: (%v, %v)", i, tr.X, tr.Y)
		}
	}
}
