package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Abhishek10745/folio/common"
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

// ConnectionSystem draws a line between every unique pair of particles
// closer than the link distance, alpha falling linearly with distance. The
// scan is an exhaustive O(n²) pass over the dense particle list, fine at
// the configured counts.
type ConnectionSystem struct {
	spec prefabs.FieldSpec
	link color.NRGBA
}

func NewConnectionSystem(spec prefabs.FieldSpec) *ConnectionSystem {
	return &ConnectionSystem{
		spec: spec,
		link: spec.Theme.Color("link", color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}),
	}
}

func (s *ConnectionSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}

	ents := w.Query(component.TransformComponent.ID(), component.NodeComponent.ID(), component.VelocityComponent.ID())
	for i := 0; i < len(ents); i++ {
		ti, _ := ecs.Get(w, ents[i], component.TransformComponent)
		ni, _ := ecs.Get(w, ents[i], component.NodeComponent)
		for j := i + 1; j < len(ents); j++ {
			tj, _ := ecs.Get(w, ents[j], component.TransformComponent)
			nj, _ := ecs.Get(w, ents[j], component.NodeComponent)

			d := common.Dist(ti.X, ti.Y, tj.X, tj.Y)
			alpha := LinkAlpha(d, s.spec.LinkDistance)
			if alpha <= 0 {
				continue
			}

			// Pulses on either endpoint brighten the wire.
			glow := ni.Glow
			if nj.Glow > glow {
				glow = nj.Glow
			}
			a := alpha * common.Clamp(s.spec.Theme.LinkAlpha+glow*(1-s.spec.Theme.LinkAlpha), 0, 1)

			col := s.link
			col.A = uint8(a * 0xff)
			vector.StrokeLine(screen,
				float32(ti.X), float32(ti.Y),
				float32(tj.X), float32(tj.Y),
				1, col, true)
		}
	}
}

// LinkAlpha returns the base line opacity for a pair at distance d: 1 at
// distance zero, falling linearly to 0 at the threshold. Distances at or
// beyond the threshold draw nothing (strict less-than).
func LinkAlpha(d, threshold float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return 1 - d/threshold
}
