package entity

import (
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

const (
	revealSpeed   = 0.04
	scrambleDelay = 3
)

// NewSection builds one deck section with its heading scramble and content
// reveal. The first section starts active.
func NewSection(w *ecs.World, spec prefabs.SectionSpec, index int) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.SectionComponent, &component.Section{
		ID:     spec.ID,
		Title:  spec.Title,
		Index:  index,
		Active: index == 0,
		Body:   append([]string(nil), spec.Body...),
		Email:  spec.Email,
	})
	_ = ecs.Add(w, e, component.ScrambleComponent, &component.Scramble{
		Target: spec.Title,
		Delay:  scrambleDelay,
	})
	_ = ecs.Add(w, e, component.RevealComponent, &component.Reveal{
		Active: index == 0,
		Speed:  revealSpeed,
	})
	return e
}

// NewTypewriter builds the hero typewriter from the sections spec.
func NewTypewriter(w *ecs.World, spec prefabs.TypewriterSpec) ecs.Entity {
	tw := &component.Typewriter{
		Phrases:     append([]string(nil), spec.Phrases...),
		TypeDelay:   spec.TypeDelay,
		DeleteDelay: spec.DeleteDelay,
		HoldDelay:   spec.HoldDelay,
	}
	if tw.TypeDelay <= 0 {
		tw.TypeDelay = 6
	}
	if tw.DeleteDelay <= 0 {
		tw.DeleteDelay = 3
	}
	if tw.HoldDelay <= 0 {
		tw.HoldDelay = 90
	}
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TypewriterComponent, tw)
	return e
}

// NewProjectCard builds a tilting card entity for a project.
func NewProjectCard(w *ecs.World, x, y, halfW, halfH float64) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.TiltComponent, &component.Tilt{
		HalfW:    halfW,
		HalfH:    halfH,
		Strength: 0.08,
	})
	return e
}

// ClearContent destroys every content entity: sections, project cards,
// skill chips, and the typewriter. Field particles and sparks are left
// alone, so a sections reload never disturbs the background.
func ClearContent(w *ecs.World) {
	destroyAll(w, component.SectionComponent.ID())
	destroyAll(w, component.TiltComponent.ID())
	destroyAll(w, component.ChipComponent.ID())
	destroyAll(w, component.TypewriterComponent.ID())
}

func destroyAll(w *ecs.World, id component.ID) {
	for _, e := range w.Query(id) {
		w.DestroyEntity(e)
	}
}

// NewChip builds a skills-playground chip; the physics system picks it up on
// its next sync pass.
func NewChip(w *ecs.World, spec prefabs.SkillSpec, x, y float64, hue int) ecs.Entity {
	radius := 14 + 18*spec.Weight
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.ChipComponent, &component.Chip{
		Label:  spec.Label,
		Radius: radius,
		Hue:    hue,
	})
	return e
}
