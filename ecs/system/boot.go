package system

import (
	"fmt"
	"image/color"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/prefabs"
)

// BootStep is one line of the intro timeline.
type BootStep struct {
	Text  string
	Delay int
	Style string
}

// BootSystem plays the mock boot sequence once at startup. The timeline is
// built by an embedded tengo script; if the script is missing or broken the
// system falls back to a built-in timeline rather than failing, so the deck
// always comes up.
type BootSystem struct {
	steps   []BootStep
	shown   int
	timer   int
	done    bool
	emitted bool

	face   text.Face
	fg     color.NRGBA
	dim    color.NRGBA
	accent color.NRGBA
	ok     color.NRGBA
	bg     color.NRGBA
}

func NewBootSystem(theme prefabs.Theme) *BootSystem {
	steps, err := LoadBootTimeline("boot.tengo")
	if err != nil {
		log.Printf("boot: using fallback timeline: %v", err)
		steps = fallbackTimeline()
	}

	fg := theme.Color("text", color.NRGBA{R: 0xe6, G: 0xf1, B: 0xff, A: 0xff})
	return &BootSystem{
		steps:  steps,
		face:   text.NewGoXFace(basicfont.Face7x13),
		fg:     fg,
		dim:    color.NRGBA{R: fg.R / 2, G: fg.G / 2, B: fg.B / 2, A: 0xff},
		accent: theme.Color("accent", color.NRGBA{R: 0xff, G: 0x6f, B: 0x91, A: 0xff}),
		ok:     theme.Color("node", color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}),
		bg:     theme.Color("background", color.NRGBA{R: 0x0a, G: 0x0e, B: 0x17, A: 0xff}),
	}
}

// LoadBootTimeline compiles and runs the named tengo script and reads its
// `steps` array.
func LoadBootTimeline(name string) ([]BootStep, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("boot: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "text", "rand"))
	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("boot: run script %s: %w", name, err)
	}

	raw, ok := compiled.Get("steps").Value().([]interface{})
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("boot: script %s did not produce a steps array", name)
	}

	steps := make([]BootStep, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("boot: script %s: step %d is not a map", name, i)
		}
		step := BootStep{Style: "normal", Delay: 20}
		if v, ok := m["text"].(string); ok {
			step.Text = v
		}
		if v, ok := m["style"].(string); ok && v != "" {
			step.Style = v
		}
		switch v := m["delay"].(type) {
		case int64:
			step.Delay = int(v)
		case int:
			step.Delay = v
		case float64:
			step.Delay = int(v)
		}
		if step.Delay < 1 {
			step.Delay = 1
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func fallbackTimeline() []BootStep {
	return []BootStep{
		{Text: "folio init", Delay: 24, Style: "dim"},
		{Text: "seeding neural field ... ok", Delay: 24, Style: "normal"},
		{Text: "ready. press any key.", Delay: 24, Style: "ok"},
	}
}

func (s *BootSystem) Update(w *ecs.World) {
	if s == nil || s.done {
		return
	}
	if s.shown >= len(s.steps) {
		s.finish(w)
		return
	}
	s.timer++
	if s.timer >= s.steps[s.shown].Delay {
		s.timer = 0
		s.shown++
		if s.shown >= len(s.steps) {
			s.finish(w)
		}
	}
}

func (s *BootSystem) finish(w *ecs.World) {
	s.done = true
	if !s.emitted && w != nil {
		w.Events().Push(ecs.Event{Type: ecs.EventBootFinished})
		s.emitted = true
	}
}

// Done reports whether every line has been shown.
func (s *BootSystem) Done() bool {
	return s == nil || s.done
}

// Skip immediately completes the timeline.
func (s *BootSystem) Skip(w *ecs.World) {
	if s == nil || s.done {
		return
	}
	s.shown = len(s.steps)
	s.finish(w)
}

// Visible returns the lines shown so far.
func (s *BootSystem) Visible() []BootStep {
	if s == nil {
		return nil
	}
	return s.steps[:s.shown]
}

// Draw paints the boot overlay over the whole screen.
func (s *BootSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || screen == nil || s.done {
		return
	}

	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), s.bg, false)

	x, y := 48.0, 64.0
	for _, step := range s.Visible() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(s.styleColor(step.Style))
		text.Draw(screen, step.Text, s.face, op)
		y += 18
	}
}

func (s *BootSystem) styleColor(style string) color.NRGBA {
	switch style {
	case "dim":
		return s.dim
	case "accent":
		return s.accent
	case "ok":
		return s.ok
	default:
		return s.fg
	}
}
