package system

import (
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

// RevealSystem eases section content in. Progress is monotonic while the
// reveal is active and resets to zero when it is not, so re-entering a
// section replays the effect.
type RevealSystem struct{}

func NewRevealSystem() *RevealSystem {
	return &RevealSystem{}
}

func (s *RevealSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RevealComponent, func(e ecs.Entity, r *component.Reveal) {
		if !r.Active {
			r.Progress = 0
			return
		}
		speed := r.Speed
		if speed <= 0 {
			speed = 0.04
		}
		r.Progress += speed * (1 - r.Progress) * 2
		if r.Progress > 0.999 {
			r.Progress = 1
		}
	})
}
