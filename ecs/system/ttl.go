package system

import (
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/ecs/entity"
)

// TTLSystem decrements frame-based TTL components and destroys expired
// entities.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			w.DestroyEntity(e)
		}
	})
}

// SparkSystem turns pointer clicks on the background into short-lived
// sparks.
type SparkSystem struct {
	clicks ClickSource
}

func NewSparkSystem(clicks ClickSource) *SparkSystem {
	return &SparkSystem{clicks: clicks}
}

const (
	sparkRadius = 3.5
	sparkFrames = 28
)

func (s *SparkSystem) Update(w *ecs.World) {
	if s == nil || s.clicks == nil {
		return
	}
	x, y, ok := s.clicks.Clicked()
	if !ok {
		return
	}
	entity.NewSpark(w, x, y, sparkRadius, sparkFrames)
}
