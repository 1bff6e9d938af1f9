package system

import (
	"math/rand"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/ecs/entity"
	"github.com/Abhishek10745/folio/prefabs"
)

// FieldSystem owns the particle set. It rebuilds the whole field whenever
// the surface size changes: the old entities are destroyed wholesale and a
// fresh batch is created for the new count tier.
type FieldSystem struct {
	spec    prefabs.FieldSpec
	surface Surface
	rng     *rand.Rand

	particles  []ecs.Entity
	lastWidth  float64
	lastHeight float64
}

func NewFieldSystem(spec prefabs.FieldSpec, surface Surface, rng *rand.Rand) *FieldSystem {
	return &FieldSystem{spec: spec, surface: surface, rng: rng}
}

// Spec returns the active field configuration.
func (s *FieldSystem) Spec() prefabs.FieldSpec {
	return s.spec
}

// SetSpec swaps the field configuration and forces a rebuild on the next
// tick (hot reload path).
func (s *FieldSystem) SetSpec(spec prefabs.FieldSpec) {
	s.spec = spec
	s.lastWidth, s.lastHeight = 0, 0
}

// Particles returns the current particle handles.
func (s *FieldSystem) Particles() []ecs.Entity {
	return s.particles
}

func (s *FieldSystem) Update(w *ecs.World) {
	if s == nil || s.surface == nil {
		return
	}
	width, height := s.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.lastWidth && height == s.lastHeight {
		return
	}
	s.rebuild(w, width, height)
}

func (s *FieldSystem) rebuild(w *ecs.World, width, height float64) {
	for _, e := range s.particles {
		w.DestroyEntity(e)
	}
	s.particles = entity.NewField(w, s.spec, width, height, s.rng)
	s.lastWidth, s.lastHeight = width, height
	w.Events().Push(ecs.Event{Type: ecs.EventFieldRebuilt, Data: len(s.particles)})
}

// PulseSystem occasionally fires a signal pulse on a random particle and
// decays active pulses, writing the node glow the renderers read.
type PulseSystem struct {
	spec prefabs.FieldSpec
	rng  *rand.Rand
}

func NewPulseSystem(spec prefabs.FieldSpec, rng *rand.Rand) *PulseSystem {
	return &PulseSystem{spec: spec, rng: rng}
}

func (s *PulseSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}

	ecs.ForEach2(w, component.NodeComponent, component.PulseComponent, func(e ecs.Entity, n *component.Node, p *component.Pulse) {
		p.Frames--
		if p.Frames <= 0 || p.Total <= 0 {
			n.Glow = 0
			ecs.Remove(w, e, component.PulseComponent)
			return
		}
		n.Glow = float64(p.Frames) / float64(p.Total)
	})

	if s.spec.PulseFrames <= 0 || s.rng.Float64() >= s.spec.PulseChance {
		return
	}
	nodes := w.Query(component.NodeComponent.ID(), component.VelocityComponent.ID())
	if len(nodes) == 0 {
		return
	}
	e := nodes[s.rng.Intn(len(nodes))]
	if ecs.Has(w, e, component.PulseComponent) {
		return
	}
	_ = ecs.Add(w, e, component.PulseComponent, &component.Pulse{
		Frames: s.spec.PulseFrames,
		Total:  s.spec.PulseFrames,
	})
}
