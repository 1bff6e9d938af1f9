package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Abhishek10745/folio/common"
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
	"github.com/Abhishek10745/folio/prefabs"
)

const (
	cardHalfW = 170
	cardHalfH = 56
	deckLeft  = 48
	deckTop   = 170
)

// Deck renders the active section's content: scrambled heading, eased-in
// body, tilting project cards, the chip playground, and the contact blurb.
type Deck struct {
	content *prefabs.SectionsSpec
	face    text.Face

	bg     color.NRGBA
	fg     color.NRGBA
	dim    color.NRGBA
	accent color.NRGBA
	node   color.NRGBA

	frames int
}

func NewDeck(theme prefabs.Theme, content *prefabs.SectionsSpec) *Deck {
	fg := theme.Color("text", color.NRGBA{R: 0xe6, G: 0xf1, B: 0xff, A: 0xff})
	return &Deck{
		content: content,
		face:    text.NewGoXFace(basicfont.Face7x13),
		bg:      theme.Color("background", color.NRGBA{R: 0x0a, G: 0x0e, B: 0x17, A: 0xff}),
		fg:      fg,
		dim:     color.NRGBA{R: fg.R / 2, G: fg.G / 2, B: fg.B / 2, A: 0xff},
		accent:  theme.Color("accent", color.NRGBA{R: 0xff, G: 0x6f, B: 0x91, A: 0xff}),
		node:    theme.Color("node", color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}),
	}
}

func (d *Deck) Background() color.NRGBA {
	return d.bg
}

func cardCenter(surfaceW float64, i int) (float64, float64) {
	perRow := 1
	if surfaceW > 2*(cardHalfW*2+24) {
		perRow = 2
	}
	col := i % perRow
	row := i / perRow
	x := deckLeft + cardHalfW + float64(col)*(cardHalfW*2+32)
	y := float64(deckTop+90) + cardHalfH + float64(row)*(cardHalfH*2+24)
	return x, y
}

func (d *Deck) Draw(w *ecs.World, screen *ebiten.Image, active ecs.Entity, cards []ecs.Entity) {
	if d == nil || screen == nil {
		return
	}
	d.frames++

	d.drawHero(w, screen)

	sec, ok := ecs.Get(w, active, component.SectionComponent)
	if !ok {
		return
	}

	heading := sec.Title
	if sc, okSc := ecs.Get(w, active, component.ScrambleComponent); okSc && sc.Text != "" {
		heading = sc.Text
	}
	d.drawText(screen, heading, deckLeft, deckTop, 2, d.node, 1)

	progress := 1.0
	if r, okR := ecs.Get(w, active, component.RevealComponent); okR {
		progress = r.Progress
	}
	offset := (1 - progress) * 24

	y := float64(deckTop) + 40 + offset
	for _, line := range sec.Body {
		d.drawText(screen, line, deckLeft, y, 1, d.fg, progress)
		y += 18
	}

	switch sec.ID {
	case "projects":
		d.drawProjects(w, screen, sec, cards, progress)
	case "skills":
		d.drawChips(w, screen, progress)
	case "contact":
		d.drawContact(screen, sec, y+10, progress)
	}
}

func (d *Deck) drawHero(w *ecs.World, screen *ebiten.Image) {
	d.drawText(screen, "ABHISHEK", deckLeft, 92, 3, d.fg, 1)

	line := ""
	if e, ok := w.First(component.TypewriterComponent.ID()); ok {
		if tw, okTw := ecs.Get(w, e, component.TypewriterComponent); okTw {
			line = tw.Text
		}
	}
	// Blinking block cursor.
	cursor := " "
	if (d.frames/30)%2 == 0 {
		cursor = "_"
	}
	d.drawText(screen, "> "+line+cursor, deckLeft, 124, 1, d.accent, 1)
}

func (d *Deck) drawProjects(w *ecs.World, screen *ebiten.Image, sec *component.Section, cards []ecs.Entity, progress float64) {
	projects := d.projectsFor(sec.ID)
	for i, p := range projects {
		if i >= len(cards) {
			break
		}
		t, okT := ecs.Get(w, cards[i], component.TransformComponent)
		if !okT {
			continue
		}
		// The tilt nudges the card toward the pointer for a cheap parallax.
		var ox, oy float64
		if tilt, okTilt := ecs.Get(w, cards[i], component.TiltComponent); okTilt {
			ox = tilt.SkewX * 120
			oy = tilt.SkewY * 60
		}
		x := t.X - cardHalfW + ox
		y := t.Y - cardHalfH + oy

		vector.FillRect(screen, float32(x), float32(y), cardHalfW*2, cardHalfH*2, d.cardFill(progress), false)
		vector.StrokeRect(screen, float32(x), float32(y), cardHalfW*2, cardHalfH*2, 1, d.node, false)

		d.drawText(screen, p.Name, x+14, y+22, 1, d.accent, progress)
		d.drawText(screen, p.Summary, x+14, y+44, 1, d.fg, progress)
		d.drawText(screen, strings.Join(p.Stack, " / "), x+14, y+66, 1, d.dim, progress)
	}
}

func (d *Deck) drawChips(w *ecs.World, screen *ebiten.Image, progress float64) {
	ecs.ForEach2(w, component.ChipComponent, component.TransformComponent, func(e ecs.Entity, chip *component.Chip, t *component.Transform) {
		col := d.chipColor(chip.Hue)
		col.A = uint8(common.Clamp(progress, 0, 1) * 0xff)
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(chip.Radius), col, true)
		label := chip.Label
		d.drawText(screen, label, t.X-float64(len(label))*3.5, t.Y-4, 1, d.bg, progress)
	})
	d.drawText(screen, "click a chip to fling it", deckLeft, deckTop+46, 1, d.dim, progress)
}

func (d *Deck) drawContact(screen *ebiten.Image, sec *component.Section, y float64, progress float64) {
	if sec.Email != "" {
		d.drawText(screen, sec.Email, deckLeft, y+8, 1, d.node, progress)
	}
}

func (d *Deck) projectsFor(id string) []prefabs.ProjectSpec {
	for _, s := range d.content.Sections {
		if s.ID == id {
			return s.Projects
		}
	}
	return nil
}

func (d *Deck) chipColor(hue int) color.NRGBA {
	palette := []color.NRGBA{d.node, d.accent, d.fg}
	return palette[hue%len(palette)]
}

func (d *Deck) cardFill(progress float64) color.NRGBA {
	c := d.bg
	c.R += 10
	c.G += 12
	c.B += 18
	c.A = uint8(common.Clamp(progress, 0, 1) * 230)
	return c
}

func (d *Deck) drawText(screen *ebiten.Image, s string, x, y, scale float64, col color.NRGBA, alpha float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(float32(common.Clamp(alpha, 0, 1)))
	text.Draw(screen, s, d.face, op)
}
