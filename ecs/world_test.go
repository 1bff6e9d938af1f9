package ecs

import (
	"testing"

	"github.com/Abhishek10745/folio/ecs/component"
)

var (
	testPos = component.NewComponent[[2]float64]()
	testTag = component.NewComponent[string]()
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if got := w.EntityCount(); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for a live entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if got := w.EntityCount(); got != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
				}
			}
		})
	}
}

func TestStaleHandleDoesNotAlias(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	if !w.DestroyEntity(e1) {
		t.Fatal("destroy failed")
	}
	e2 := w.CreateEntity() // recycles the id with a bumped generation
	if e1 == e2 {
		t.Fatalf("recycled entity must differ from the stale handle: %v == %v", e1, e2)
	}
	if w.IsAlive(e1) {
		t.Fatal("stale handle reports alive")
	}
	if !w.IsAlive(e2) {
		t.Fatal("fresh handle reports dead")
	}
	if err := Add(w, e1, testTag, strPtr("stale")); err == nil {
		t.Fatal("Add on a stale handle should fail")
	}
}

func strPtr(s string) *string { return &s }

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, testPos, &[2]float64{1, 2}); err != nil {
		t.Fatalf("add pos to e1: %v", err)
	}
	if err := Add(w, e2, testPos, &[2]float64{3, 4}); err != nil {
		t.Fatalf("add pos to e2: %v", err)
	}
	if err := Add(w, e2, testTag, strPtr("both")); err != nil {
		t.Fatalf("add tag to e2: %v", err)
	}
	if err := Add(w, e3, testTag, strPtr("tag-only")); err != nil {
		t.Fatalf("add tag to e3: %v", err)
	}

	t.Run("get_mutates_in_place", func(t *testing.T) {
		p, ok := Get(w, e1, testPos)
		if !ok {
			t.Fatal("expected pos on e1")
		}
		p[0] = 42
		p2, _ := Get(w, e1, testPos)
		if p2[0] != 42 {
			t.Fatalf("mutation through pointer lost: got %v", p2[0])
		}
	})

	t.Run("query_intersection", func(t *testing.T) {
		got := w.Query(testPos.ID(), testTag.ID())
		if len(got) != 1 || got[0] != e2 {
			t.Fatalf("expected only e2, got %v", got)
		}
	})

	t.Run("foreach_visits_all", func(t *testing.T) {
		seen := map[Entity]bool{}
		ForEach(w, testTag, func(e Entity, v *string) {
			seen[e] = true
		})
		if !seen[e2] || !seen[e3] || seen[e1] {
			t.Fatalf("unexpected visit set: %v", seen)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if !Remove(w, e2, testTag) {
			t.Fatal("remove tag from e2 should succeed")
		}
		if Has(w, e2, testTag) {
			t.Fatal("tag still present after remove")
		}
		if got := w.Query(testPos.ID(), testTag.ID()); len(got) != 0 {
			t.Fatalf("expected empty intersection, got %v", got)
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		w.DestroyEntity(e2)
		if _, ok := Get(w, e2, testPos); ok {
			t.Fatal("destroyed entity still has components")
		}
	})
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		systemFunc(func(w *World) { order = append(order, "a") }),
		systemFunc(func(w *World) {
			order = append(order, "b")
			w.Events().Push(Event{Type: "tick"})
		}),
	)
	s.Update(w)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("bad order: %v", order)
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("events should be flushed at end of tick, got %v", evts)
	}
}

func TestEventsVisibleToLaterSystemsSameTick(t *testing.T) {
	w := NewWorld()
	var got []Event
	s := NewScheduler(
		systemFunc(func(w *World) { w.Events().Push(Event{Type: "first"}) }),
		systemFunc(func(w *World) { got = w.Events().Drain() }),
	)
	s.Update(w)
	if len(got) != 1 || got[0].Type != "first" {
		t.Fatalf("a later system should see same-tick events, got %v", got)
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("queue should be empty after the consuming system, got %v", evts)
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
