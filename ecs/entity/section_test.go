package entity

import (
	"math/rand"
	"testing"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/prefabs"
)

func TestClearContentLeavesFieldAlone(t *testing.T) {
	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(1))

	particles := NewField(w, prefabs.DefaultFieldSpec(), 1280, 720, rng)
	spark := NewSpark(w, 10, 10, 3, 20)

	content := []ecs.Entity{
		NewSection(w, prefabs.SectionSpec{ID: "about", Title: "ABOUT"}, 0),
		NewSection(w, prefabs.SectionSpec{ID: "contact", Title: "CONTACT", Email: "a@b.c"}, 1),
		NewProjectCard(w, 100, 100, 170, 56),
		NewChip(w, prefabs.SkillSpec{Label: "Go", Weight: 1}, 50, 50, 0),
		NewTypewriter(w, prefabs.TypewriterSpec{Phrases: []string{"hello"}}),
	}

	ClearContent(w)

	for i, e := range content {
		if w.IsAlive(e) {
			t.Errorf("content entity %d survived ClearContent", i)
		}
	}
	for i, e := range particles {
		if !w.IsAlive(e) {
			t.Fatalf("particle %d destroyed by ClearContent", i)
		}
	}
	if !w.IsAlive(spark) {
		t.Fatal("spark destroyed by ClearContent")
	}

	// The world stays usable for a rebuild from fresh content.
	rebuilt := NewSection(w, prefabs.SectionSpec{ID: "about", Title: "ABOUT v2"}, 0)
	if !w.IsAlive(rebuilt) {
		t.Fatal("rebuild after ClearContent failed")
	}
	if got := w.EntityCount(); got != len(particles)+2 {
		t.Fatalf("expected %d entities after rebuild, got %d", len(particles)+2, got)
	}
}
