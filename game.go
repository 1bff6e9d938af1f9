package main

import (
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Abhishek10745/folio/common"
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/ecs/entity"
	"github.com/Abhishek10745/folio/ecs/system"
	"github.com/Abhishek10745/folio/prefabs"
)

// Options are the runtime switches from main.
type Options struct {
	Section     string
	Debug       bool
	Reduced     bool
	SkipBoot    bool
	ClipboardOK bool
}

type Game struct {
	opts    Options
	spec    prefabs.FieldSpec
	content *prefabs.SectionsSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *Input
	rng       *rand.Rand

	field *system.FieldSystem
	chips *system.ChipPhysicsSystem
	boot  *system.BootSystem

	linksDraw *system.ConnectionSystem
	nodesDraw *system.NodeRenderSystem

	deck    *Deck
	nav     *NavUI
	contact *ContactForm
	hud     *HUD

	sections []ecs.Entity
	cards    []ecs.Entity
	active   int

	watcher *prefabs.Watcher
	frames  int
}

func NewGame(opts Options) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	spec, err := prefabs.LoadFieldSpec()
	if err != nil {
		log.Printf("field spec: %v", err)
	}
	if opts.Reduced {
		spec.DesktopCount = spec.MobileCount
	}

	content, err := prefabs.LoadSectionsSpec()
	if err != nil {
		log.Printf("sections spec: %v", err)
		content = &prefabs.SectionsSpec{
			Sections: []prefabs.SectionSpec{{ID: "about", Title: "ABOUT"}},
		}
	}

	world := ecs.NewWorld()
	input := NewInput()
	input.SetSize(common.BaseWidth, common.BaseHeight)

	g := &Game{
		opts:      opts,
		spec:      spec,
		content:   content,
		world:     world,
		input:     input,
		rng:       rng,
		linksDraw: system.NewConnectionSystem(spec),
		nodesDraw: system.NewNodeRenderSystem(spec),
	}

	g.field = system.NewFieldSystem(spec, input, rng)
	g.chips = system.NewChipPhysicsSystem(input, input, input)
	g.boot = system.NewBootSystem(spec.Theme)

	g.scheduler = ecs.NewScheduler(
		g.field,
		system.NewMotionSystem(input),
		system.NewPointerForceSystem(input, spec),
		system.NewPulseSystem(spec, rng),
		system.NewSparkSystem(system.NewFilteredClicks(input, g.backgroundClick)),
		system.NewTTLSystem(),
		system.NewTypewriterSystem(),
		system.NewScrambleSystem(rng),
		system.NewRevealSystem(),
		system.NewTiltSystem(input),
		g.chips,
		systemFunc(g.handleEvents),
	)

	g.buildContent(rng)
	g.deck = NewDeck(spec.Theme, content)
	g.hud = NewHUD(spec.Theme)
	g.nav = NewNavUI(g)
	g.contact = NewContactForm(g)

	if opts.SkipBoot {
		g.boot.Skip(world)
	}
	if opts.Section != "" {
		g.activateByID(opts.Section)
	} else {
		g.setSection(0)
	}

	if opts.Debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("spec watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }

// handleEvents runs as the last scheduled system, so it sees everything
// pushed earlier in the same tick before the queue is flushed.
func (g *Game) handleEvents(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventFieldRebuilt:
			if g.opts.Debug {
				log.Printf("field rebuilt: %v particles", evt.Data)
			}
		case ecs.EventSectionActivated:
			g.nav.Invalidate()
		case ecs.EventBootFinished:
			g.replayActive()
		}
	}
}

// replayActive re-arms the active section's heading scramble and reveal so
// the deck animates in once the boot overlay clears.
func (g *Game) replayActive() {
	e, ok := g.activeSection()
	if !ok {
		return
	}
	if sc, okSc := ecs.Get(g.world, e, component.ScrambleComponent); okSc {
		system.RestartScramble(sc)
	}
	if r, okR := ecs.Get(g.world, e, component.RevealComponent); okR {
		r.Progress = 0
	}
}

// backgroundClick reports whether a click at x, y belongs to the field.
// Clicks on the boot overlay, the nav, the contact form, or the chip
// playground are claimed by those surfaces instead.
func (g *Game) backgroundClick(x, y float64) bool {
	if !g.boot.Done() {
		return false
	}
	if g.activeID() == "skills" {
		return false
	}
	if g.nav.Contains(x, y) {
		return false
	}
	if g.activeID() == "contact" && g.contact.Contains(x, y) {
		return false
	}
	return true
}

func (g *Game) buildContent(rng *rand.Rand) {
	for i, sec := range g.content.Sections {
		g.sections = append(g.sections, entity.NewSection(g.world, sec, i))

		switch {
		case len(sec.Projects) > 0:
			for range sec.Projects {
				g.cards = append(g.cards, entity.NewProjectCard(g.world, 0, 0, cardHalfW, cardHalfH))
			}
		case len(sec.Skills) > 0:
			w, _ := g.input.Size()
			for j, sk := range sec.Skills {
				x := w*0.2 + rng.Float64()*w*0.6
				y := 120 + float64(j%3)*60
				entity.NewChip(g.world, sk, x, y, j)
			}
		}
	}
	entity.NewTypewriter(g.world, g.content.Typewriter)
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if !g.boot.Done() {
		if g.input.AnyKey() {
			g.boot.Skip(g.world)
		} else {
			g.boot.Update(g.world)
		}
	}

	g.layoutCards()
	g.scheduler.Update(g.world)

	if g.boot.Done() {
		g.handleKeys()
		g.nav.Update()
		if g.activeID() == "contact" {
			g.contact.Update()
		}
	}

	g.drainWatcher()
	return nil
}

func (g *Game) handleKeys() {
	keys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
	for i, k := range keys {
		if i < len(g.sections) && inpututil.IsKeyJustPressed(k) {
			g.setSection(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.sections) > 0 {
		g.setSection((g.active + 1) % len(g.sections))
	}
}

// layoutCards pins project-card transforms to the current layout so the tilt
// system reacts to the pointer in screen space.
func (g *Game) layoutCards() {
	if len(g.cards) == 0 {
		return
	}
	w, _ := g.input.Size()
	for i, e := range g.cards {
		x, y := cardCenter(w, i)
		if t, ok := ecs.Get(g.world, e, component.TransformComponent); ok {
			t.X, t.Y = x, y
		}
	}
}

// setSection activates one deck section, re-arming its reveal and heading
// scramble, and wakes the skills playground only while it is on screen.
func (g *Game) setSection(i int) {
	if i < 0 || i >= len(g.sections) {
		return
	}
	g.active = i

	for _, e := range g.sections {
		sec, ok := ecs.Get(g.world, e, component.SectionComponent)
		if !ok {
			continue
		}
		active := sec.Index == i
		wasActive := sec.Active
		sec.Active = active

		if r, ok := ecs.Get(g.world, e, component.RevealComponent); ok {
			r.Active = active
		}
		if active && !wasActive {
			if sc, ok := ecs.Get(g.world, e, component.ScrambleComponent); ok {
				system.RestartScramble(sc)
			}
		}
	}

	g.chips.SetEnabled(g.activeID() == "skills")
	g.world.Events().Push(ecs.Event{Type: ecs.EventSectionActivated, Data: g.activeID()})
}

func (g *Game) activateByID(id string) {
	for i, sec := range g.content.Sections {
		if sec.ID == id {
			g.setSection(i)
			return
		}
	}
	g.setSection(0)
}

func (g *Game) activeID() string {
	if g.active < 0 || g.active >= len(g.content.Sections) {
		return ""
	}
	return g.content.Sections[g.active].ID
}

func (g *Game) activeSection() (ecs.Entity, bool) {
	if g.active < 0 || g.active >= len(g.sections) {
		return 0, false
	}
	return g.sections[g.active], true
}

// drainWatcher applies spec hot reloads in debug runs.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("spec changed: %s", name)
			g.reloadSpecs(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("spec watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reloadSpecs applies a hot reload for one changed file: field.yaml rebuilds
// the field and theme, sections.yaml rebuilds the content entities and
// views, and a script change replays the boot timeline.
func (g *Game) reloadSpecs(name string) {
	switch reloadTarget(name) {
	case "boot":
		g.reloadBoot()
	case "sections":
		g.reloadContent()
	default:
		g.reloadField()
	}
}

// reloadTarget maps a changed file to the reload path that owns it.
func reloadTarget(name string) string {
	base := filepath.Base(name)
	switch {
	case strings.HasSuffix(base, ".tengo"):
		return "boot"
	case base == "sections.yaml":
		return "sections"
	default:
		return "field"
	}
}

func (g *Game) reloadField() {
	spec, err := prefabs.LoadFieldSpec()
	if err != nil {
		log.Printf("reload field spec: %v", err)
		return
	}
	if g.opts.Reduced {
		spec.DesktopCount = spec.MobileCount
	}
	g.spec = spec
	g.field.SetSpec(spec)
	g.linksDraw = system.NewConnectionSystem(spec)
	g.nodesDraw = system.NewNodeRenderSystem(spec)
	g.deck = NewDeck(spec.Theme, g.content)
	g.hud = NewHUD(spec.Theme)
	g.contact = NewContactForm(g)
	g.nav.Invalidate()
}

// reloadContent tears down the section, card, chip, and typewriter entities
// and rebuilds them from the edited sections.yaml, keeping the active
// section when its id survives the edit.
func (g *Game) reloadContent() {
	content, err := prefabs.LoadSectionsSpec()
	if err != nil {
		log.Printf("reload sections spec: %v", err)
		return
	}
	prev := g.activeID()

	entity.ClearContent(g.world)
	g.sections = g.sections[:0]
	g.cards = g.cards[:0]
	g.content = content
	g.buildContent(g.rng)

	g.deck = NewDeck(g.spec.Theme, content)
	g.nav = NewNavUI(g)
	g.contact = NewContactForm(g)
	g.activateByID(prev)
}

// reloadBoot replays the intro with the edited script.
func (g *Game) reloadBoot() {
	g.boot = system.NewBootSystem(g.spec.Theme)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.deck.Background())

	g.linksDraw.Draw(g.world, screen)
	g.nodesDraw.Draw(g.world, screen)

	if !g.boot.Done() {
		g.boot.Draw(g.world, screen)
		return
	}

	if e, ok := g.activeSection(); ok {
		g.deck.Draw(g.world, screen, e, g.cards)
	}
	g.nav.Draw(screen)
	if g.activeID() == "contact" {
		g.contact.Draw(screen)
	}
	g.hud.Draw(screen, g)
}

// Layout passes the real window size through so the field rebuilds on
// resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.input.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
