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

// NodeRenderSystem draws every field node as a filled circle, brightened by
// its glow and faded by a TTL when present (click sparks).
type NodeRenderSystem struct {
	node   color.NRGBA
	accent color.NRGBA
}

func NewNodeRenderSystem(spec prefabs.FieldSpec) *NodeRenderSystem {
	return &NodeRenderSystem{
		node:   spec.Theme.Color("node", color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}),
		accent: spec.Theme.Color("accent", color.NRGBA{R: 0xff, G: 0x6f, B: 0x91, A: 0xff}),
	}
}

func (s *NodeRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent, component.NodeComponent, func(e ecs.Entity, t *component.Transform, n *component.Node) {
		col := s.node
		radius := n.Radius

		if ttl, ok := ecs.Get(w, e, component.TTLComponent); ok && ttl.Total > 0 {
			// Spark: accent colored, fading and shrinking out.
			frac := common.Clamp(float64(ttl.Frames)/float64(ttl.Total), 0, 1)
			col = s.accent
			col.A = uint8(frac * 0xff)
			radius *= 0.5 + frac
		} else if n.Glow > 0 {
			radius += n.Glow * n.Radius
			col.R = lighten(col.R, n.Glow)
			col.G = lighten(col.G, n.Glow)
			col.B = lighten(col.B, n.Glow)
		}

		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(radius), col, true)
	})
}

func lighten(c uint8, t float64) uint8 {
	return uint8(common.Lerp(float64(c), 0xff, common.Clamp(t, 0, 1)))
}
