package system

import (
	"math/rand"
	"testing"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

func TestScrambleRevealsMonotonically(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewScrambleSystem(rand.New(rand.NewSource(3)))
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.ScrambleComponent, &component.Scramble{
		Target: "PROJECTS",
		Delay:  1,
	})

	prev := 0
	for i := 0; i < 20; i++ {
		sys.Update(w)
		sc, _ := ecs.Get(w, e, component.ScrambleComponent)
		if sc.Revealed < prev {
			t.Fatalf("revealed count went backwards: %d -> %d", prev, sc.Revealed)
		}
		// Locked-in prefix must match the target.
		for j := 0; j < sc.Revealed && j < len(sc.Target); j++ {
			if sc.Text[j] != sc.Target[j] {
				t.Fatalf("locked prefix diverges at %d: %q vs %q", j, sc.Text, sc.Target)
			}
		}
		prev = sc.Revealed
		if sc.Done {
			break
		}
	}

	sc, _ := ecs.Get(w, e, component.ScrambleComponent)
	if !sc.Done || sc.Text != "PROJECTS" {
		t.Fatalf("scramble must terminate at the target, got done=%v text=%q", sc.Done, sc.Text)
	}

	// Once done the text stays pinned.
	sys.Update(w)
	sc, _ = ecs.Get(w, e, component.ScrambleComponent)
	if sc.Text != "PROJECTS" {
		t.Fatalf("finished scramble must not churn, got %q", sc.Text)
	}
}

func TestRestartScramble(t *testing.T) {
	sc := &component.Scramble{Target: "ABOUT", Revealed: 5, Done: true, Text: "ABOUT"}
	RestartScramble(sc)
	if sc.Done || sc.Revealed != 0 || sc.Text != "" {
		t.Fatalf("restart must re-arm the scramble: %+v", sc)
	}
}

func TestRevealProgress(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewRevealSystem()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.RevealComponent, &component.Reveal{Active: true, Speed: 0.1})

	prev := 0.0
	for i := 0; i < 200; i++ {
		sys.Update(w)
		r, _ := ecs.Get(w, e, component.RevealComponent)
		if r.Progress < prev {
			t.Fatalf("progress must be monotonic while active: %v -> %v", prev, r.Progress)
		}
		if r.Progress > 1 {
			t.Fatalf("progress exceeded 1: %v", r.Progress)
		}
		prev = r.Progress
	}
	if prev != 1 {
		t.Fatalf("progress must reach 1, got %v", prev)
	}

	// Deactivating resets so the effect replays on re-entry.
	r, _ := ecs.Get(w, e, component.RevealComponent)
	r.Active = false
	sys.Update(w)
	r, _ = ecs.Get(w, e, component.RevealComponent)
	if r.Progress != 0 {
		t.Fatalf("inactive reveal must reset, got %v", r.Progress)
	}
}
