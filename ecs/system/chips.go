package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

const (
	chipGravity    = 600
	chipElasticity = 0.55
	chipFriction   = 0.6
	chipFling      = 420
	chipStep       = 1.0 / 60.0
)

// ChipPhysicsSystem simulates the skills playground: chips are dynamic
// circle bodies in a gravity box bounded by the current surface. Clicking
// near a chip flings it. The system only steps while its section is on
// screen.
type ChipPhysicsSystem struct {
	space   *cp.Space
	surface Surface
	pointer PointerSource
	clicks  ClickSource

	bodies  map[ecs.Entity]*cp.Body
	shapes  map[ecs.Entity]*cp.Shape
	walls   []*cp.Shape
	lastW   float64
	lastH   float64
	enabled bool
}

func NewChipPhysicsSystem(surface Surface, pointer PointerSource, clicks ClickSource) *ChipPhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: chipGravity})
	return &ChipPhysicsSystem{
		space:   space,
		surface: surface,
		pointer: pointer,
		clicks:  clicks,
		bodies:  make(map[ecs.Entity]*cp.Body),
		shapes:  make(map[ecs.Entity]*cp.Shape),
	}
}

// SetEnabled pauses or resumes the playground; chips freeze in place while
// their section is off screen.
func (s *ChipPhysicsSystem) SetEnabled(on bool) {
	if s != nil {
		s.enabled = on
	}
}

func (s *ChipPhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.enabled {
		return
	}

	width, height := s.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}
	if width != s.lastW || height != s.lastH {
		s.rebuildWalls(width, height)
	}

	s.syncBodies(w)
	s.applyFling(w)
	s.space.Step(chipStep)
	s.syncTransforms(w)
}

func (s *ChipPhysicsSystem) rebuildWalls(width, height float64) {
	for _, wall := range s.walls {
		s.space.RemoveShape(wall)
	}
	s.walls = s.walls[:0]

	corners := []cp.Vector{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		wall := s.space.AddShape(cp.NewSegment(s.space.StaticBody, a, b, 2))
		wall.SetElasticity(chipElasticity)
		wall.SetFriction(chipFriction)
		s.walls = append(s.walls, wall)
	}
	s.lastW, s.lastH = width, height
}

// syncBodies creates bodies for new chips and removes bodies whose entity is
// gone.
func (s *ChipPhysicsSystem) syncBodies(w *ecs.World) {
	seen := make(map[ecs.Entity]bool, len(s.bodies))

	ecs.ForEach2(w, component.ChipComponent, component.TransformComponent, func(e ecs.Entity, chip *component.Chip, t *component.Transform) {
		seen[e] = true
		if _, ok := s.bodies[e]; ok {
			return
		}
		mass := math.Max(1, chip.Radius*chip.Radius*0.01)
		body := s.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, chip.Radius, cp.Vector{})))
		body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		shape := s.space.AddShape(cp.NewCircle(body, chip.Radius, cp.Vector{}))
		shape.SetElasticity(chipElasticity)
		shape.SetFriction(chipFriction)
		s.bodies[e] = body
		s.shapes[e] = shape
	})

	for e, body := range s.bodies {
		if seen[e] {
			continue
		}
		if shape, ok := s.shapes[e]; ok {
			s.space.RemoveShape(shape)
			delete(s.shapes, e)
		}
		s.space.RemoveBody(body)
		delete(s.bodies, e)
	}
}

func (s *ChipPhysicsSystem) applyFling(w *ecs.World) {
	if s.clicks == nil {
		return
	}
	cx, cy, ok := s.clicks.Clicked()
	if !ok {
		return
	}

	ecs.ForEach2(w, component.ChipComponent, component.TransformComponent, func(e ecs.Entity, chip *component.Chip, t *component.Transform) {
		body, okBody := s.bodies[e]
		if !okBody {
			return
		}
		dx, dy := t.X-cx, t.Y-cy
		d := math.Hypot(dx, dy)
		if d > chip.Radius*3 {
			return
		}
		if d < 1e-9 {
			dx, dy, d = 0, -1, 1
		}
		impulse := cp.Vector{
			X: dx / d * chipFling * body.Mass(),
			Y: dy/d*chipFling*body.Mass() - chipFling*0.5*body.Mass(),
		}
		body.ApplyImpulseAtWorldPoint(impulse, body.Position())
	})
}

func (s *ChipPhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.ChipComponent, component.TransformComponent, func(e ecs.Entity, chip *component.Chip, t *component.Transform) {
		if body, ok := s.bodies[e]; ok {
			pos := body.Position()
			t.X, t.Y = pos.X, pos.Y
		}
	})
}
