package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Abhishek10745/folio/prefabs"
)

// HUD draws the clock and, in debug runs, the frame/entity overlay.
type HUD struct {
	face text.Face
	fg   color.NRGBA
}

func NewHUD(theme prefabs.Theme) *HUD {
	return &HUD{
		face: text.NewGoXFace(basicfont.Face7x13),
		fg:   theme.Color("text", color.NRGBA{R: 0xe6, G: 0xf1, B: 0xff, A: 0xff}),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *Game) {
	if h == nil || screen == nil {
		return
	}

	w, hgt := g.input.Size()
	clock := time.Now().Format("15:04:05")
	op := &text.DrawOptions{}
	op.GeoM.Translate(w-100, hgt-28)
	op.ColorScale.ScaleWithColor(h.fg)
	text.Draw(screen, clock, h.face, op)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f  entities: %d  particles: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.world.EntityCount(), len(g.field.Particles())))
	}
}
