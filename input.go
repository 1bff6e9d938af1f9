package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Abhishek10745/folio/ecs/system"
)

// Input polls Ebiten once per tick and exposes the state through the small
// interfaces the simulation systems accept, so the core never touches the
// toolkit directly.
type Input struct {
	width  float64
	height float64

	px, py float64
	clickX float64
	clickY float64
	click  bool
	anyKey bool
}

func NewInput() *Input {
	return &Input{px: system.SentinelX, py: system.SentinelY}
}

// SetSize records the current surface size (driven by Layout).
func (i *Input) SetSize(w, h float64) {
	i.width, i.height = w, h
}

// Size implements system.Surface.
func (i *Input) Size() (float64, float64) {
	return i.width, i.height
}

// Pointer implements system.PointerSource. Off-surface cursors report the
// sentinel so no particle feels any force.
func (i *Input) Pointer() (float64, float64) {
	return i.px, i.py
}

// Clicked implements system.ClickSource.
func (i *Input) Clicked() (float64, float64, bool) {
	return i.clickX, i.clickY, i.click
}

// AnyKey reports whether any key or mouse button went down this tick.
func (i *Input) AnyKey() bool {
	return i.anyKey
}

func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	inside := fx >= 0 && fy >= 0 && fx <= i.width && fy <= i.height

	if inside {
		i.px, i.py = fx, fy
	} else {
		i.px, i.py = system.SentinelX, system.SentinelY
	}

	i.click = inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if i.click {
		i.clickX, i.clickY = fx, fy
	}

	i.anyKey = i.click || len(inpututil.AppendJustPressedKeys(nil)) > 0
}
