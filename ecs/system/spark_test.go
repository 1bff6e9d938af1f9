package system

import (
	"testing"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

func TestSparkSystemSpawnsOnClick(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewSparkSystem(FixedClicks{X: 100, Y: 80, Ok: true})

	sys.Update(w)

	sparks := w.Query(component.TTLComponent.ID())
	if len(sparks) != 1 {
		t.Fatalf("expected 1 spark, got %d", len(sparks))
	}
	tr, ok := ecs.Get(w, sparks[0], component.TransformComponent)
	if !ok || tr.X != 100 || tr.Y != 80 {
		t.Fatalf("spark not at click position: %+v", tr)
	}
}

func TestSparkSystemNoClickNoSpark(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewSparkSystem(FixedClicks{X: 100, Y: 80, Ok: false})

	sys.Update(w)

	if got := w.EntityCount(); got != 0 {
		t.Fatalf("expected no entities without a click, got %d", got)
	}
}

func TestFilteredClicks(t *testing.T) {
	tests := []struct {
		name   string
		src    ClickSource
		allow  func(x, y float64) bool
		wantOK bool
	}{
		{
			"allowed",
			FixedClicks{X: 10, Y: 20, Ok: true},
			func(x, y float64) bool { return true },
			true,
		},
		{
			"claimed_by_ui",
			FixedClicks{X: 10, Y: 20, Ok: true},
			func(x, y float64) bool { return false },
			false,
		},
		{
			"no_click",
			FixedClicks{Ok: false},
			func(x, y float64) bool { return true },
			false,
		},
		{
			"nil_allow_passes_through",
			FixedClicks{X: 10, Y: 20, Ok: true},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilteredClicks(tt.src, tt.allow)
			_, _, ok := f.Clicked()
			if ok != tt.wantOK {
				t.Errorf("Clicked() ok = %t, want %t", ok, tt.wantOK)
			}
		})
	}
}

// A surface that claims the click must keep it away from the spark system
// entirely, otherwise flinging a chip also lights a spark under it.
func TestSparkSystemRespectsClaimedClicks(t *testing.T) {
	w := ecs.NewWorld()
	claimed := NewFilteredClicks(
		FixedClicks{X: 100, Y: 80, Ok: true},
		func(x, y float64) bool { return false },
	)
	sys := NewSparkSystem(claimed)

	sys.Update(w)

	if got := w.EntityCount(); got != 0 {
		t.Fatalf("claimed click must not spawn a spark, got %d entities", got)
	}
}
