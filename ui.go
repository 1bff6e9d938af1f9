package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func uiFace() *text.Face {
	var face text.Face = text.NewGoXFace(basicfont.Face7x13)
	return &face
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

// NavUI is the section bar: one button per section on wide surfaces, a menu
// toggle with a drop-down list on narrow ones. It rebuilds when the width
// tier changes or when a section activation invalidates it.
type NavUI struct {
	g  *Game
	ui *ebitenui.UI

	bar  *widget.Container
	menu *widget.Container

	narrow bool
	open   bool
	built  bool
}

func NewNavUI(g *Game) *NavUI {
	n := &NavUI{g: g}
	n.rebuild()
	return n
}

// Invalidate forces a rebuild on the next update, used when the active
// section changes under the bar.
func (n *NavUI) Invalidate() {
	if n != nil {
		n.built = false
	}
}

// Contains reports whether the point is over the bar or its open menu.
func (n *NavUI) Contains(x, y float64) bool {
	if n == nil {
		return false
	}
	pt := image.Pt(int(x), int(y))
	if n.bar != nil && pt.In(n.bar.GetWidget().Rect) {
		return true
	}
	return n.menu != nil && pt.In(n.menu.GetWidget().Rect)
}

func (n *NavUI) Update() {
	if n == nil {
		return
	}
	w, _ := n.g.input.Size()
	narrow := w < n.g.spec.MobileWidth
	if !n.built || narrow != n.narrow {
		n.narrow = narrow
		if !narrow {
			n.open = false
		}
		n.rebuild()
	}
	n.ui.Update()
}

func (n *NavUI) Draw(screen *ebiten.Image) {
	if n == nil || screen == nil {
		return
	}
	n.ui.Draw(screen)
}

func (n *NavUI) rebuild() {
	n.menu = nil
	face := uiFace()
	btnImg := &widget.ButtonImage{
		Idle:    solidNineSlice(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xd0}),
		Hover:   solidNineSlice(color.NRGBA{R: 0x1c, G: 0x26, B: 0x3c, A: 0xd0}),
		Pressed: solidNineSlice(color.NRGBA{R: 0x1c, G: 0x26, B: 0x3c, A: 0xff}),
	}
	idle := n.g.deck.fg
	txtColor := &widget.ButtonTextColor{Idle: idle}
	activeColor := &widget.ButtonTextColor{Idle: n.g.deck.node}

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	if n.narrow {
		label := "[ menu ]"
		if n.open {
			label = "[ close ]"
		}
		bar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, face, txtColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				n.open = !n.open
				n.Invalidate()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	sectionButton := func(i int, title string) *widget.Button {
		colors := txtColor
		if i == n.g.active {
			colors = activeColor
			title = "» " + title
		}
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(strings.ToLower(title), face, colors),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				n.g.setSection(i)
				n.open = false
				n.Invalidate()
			}),
		)
	}

	if n.narrow {
		if n.open {
			menu := widget.NewContainer(
				widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{R: 0x0a, G: 0x0e, B: 0x17, A: 0xe8})),
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionVertical),
					widget.RowLayoutOpts.Spacing(4),
					widget.RowLayoutOpts.Padding(&widget.Insets{Top: 40, Left: 8, Right: 8, Bottom: 8}),
				)),
				widget.ContainerOpts.WidgetOpts(
					widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
						HorizontalPosition: widget.AnchorLayoutPositionEnd,
						VerticalPosition:   widget.AnchorLayoutPositionStart,
					}),
				),
			)
			for i, sec := range n.g.content.Sections {
				menu.AddChild(sectionButton(i, sec.Title))
			}
			root.AddChild(menu)
			n.menu = menu
		}
	} else {
		for i, sec := range n.g.content.Sections {
			bar.AddChild(sectionButton(i, sec.Title))
		}
	}

	n.ui = &ebitenui.UI{Container: root}
	n.bar = bar
	n.built = true
}

// Contact form states.
const (
	contactIdle = iota
	contactSending
	contactSent
)

const (
	sendDelayTicks = 100
	sentHoldTicks  = 200
)

// ContactForm is the simulated submission flow: Send disables the form,
// waits a fixed delay, then reports success and clears. Nothing ever leaves
// the process.
type ContactForm struct {
	g     *Game
	ui    *ebitenui.UI
	panel *widget.Container

	name    *widget.TextInput
	email   *widget.TextInput
	message *widget.TextInput
	status  *widget.Text
	send    *widget.Button

	state int
	timer int
	addr  string
}

func NewContactForm(g *Game) *ContactForm {
	f := &ContactForm{g: g}
	for _, sec := range g.content.Sections {
		if sec.ID == "contact" {
			f.addr = sec.Email
		}
	}
	f.build()
	return f
}

func (f *ContactForm) build() {
	face := uiFace()

	inputImg := &widget.TextInputImage{
		Idle:     solidNineSlice(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}),
		Disabled: solidNineSlice(color.NRGBA{R: 0x0d, G: 0x12, B: 0x1d, A: 0xff}),
	}
	inputColor := &widget.TextInputColor{
		Idle:     f.g.deck.fg,
		Disabled: f.g.deck.dim,
		Caret:    f.g.deck.node,
	}
	newInput := func() *widget.TextInput {
		return widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(300, 26)),
			widget.TextInputOpts.Image(inputImg),
			widget.TextInputOpts.Color(inputColor),
			widget.TextInputOpts.Face(face),
		)
	}

	f.name = newInput()
	f.email = newInput()
	f.message = newInput()
	f.status = widget.NewText(
		widget.TextOpts.Text("", face, f.g.deck.dim),
	)

	btnImg := &widget.ButtonImage{
		Idle:     solidNineSlice(color.NRGBA{R: 0x1c, G: 0x26, B: 0x3c, A: 0xff}),
		Hover:    solidNineSlice(color.NRGBA{R: 0x26, G: 0x33, B: 0x50, A: 0xff}),
		Pressed:  solidNineSlice(color.NRGBA{R: 0x26, G: 0x33, B: 0x50, A: 0xff}),
		Disabled: solidNineSlice(color.NRGBA{R: 0x0d, G: 0x12, B: 0x1d, A: 0xff}),
	}
	txtColor := &widget.ButtonTextColor{Idle: f.g.deck.fg, Disabled: f.g.deck.dim}

	f.send = widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("send", face, txtColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 16, Right: 16}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			f.submit()
		}),
	)

	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("copy email", face, txtColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 16, Right: 16}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			f.copyEmail()
		}),
	)

	label := func(s string) *widget.Text {
		return widget.NewText(widget.TextOpts.Text(s, face, f.g.deck.dim))
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{R: 0x0a, G: 0x0e, B: 0x17, A: 0xc8})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(label("name"))
	panel.AddChild(f.name)
	panel.AddChild(label("email"))
	panel.AddChild(f.email)
	panel.AddChild(label("message"))
	panel.AddChild(f.message)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	buttons.AddChild(f.send)
	buttons.AddChild(copyBtn)
	panel.AddChild(buttons)
	panel.AddChild(f.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Right: 48}),
		)),
	)
	root.AddChild(panel)

	f.ui = &ebitenui.UI{Container: root}
	f.panel = panel
}

// Contains reports whether the point is over the form panel.
func (f *ContactForm) Contains(x, y float64) bool {
	if f == nil || f.panel == nil {
		return false
	}
	return image.Pt(int(x), int(y)).In(f.panel.GetWidget().Rect)
}

func (f *ContactForm) submit() {
	if f.state != contactIdle {
		return
	}
	f.state = contactSending
	f.timer = 0
	f.setDisabled(true)
	f.status.Label = "transmitting..."
}

func (f *ContactForm) copyEmail() {
	if f.addr == "" {
		return
	}
	if f.g.opts.ClipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(f.addr))
		f.status.Label = "email copied"
	} else {
		f.status.Label = f.addr
	}
}

func (f *ContactForm) setDisabled(disabled bool) {
	f.send.GetWidget().Disabled = disabled
	f.name.GetWidget().Disabled = disabled
	f.email.GetWidget().Disabled = disabled
	f.message.GetWidget().Disabled = disabled
}

func (f *ContactForm) Update() {
	if f == nil {
		return
	}

	switch f.state {
	case contactSending:
		f.timer++
		if f.timer >= sendDelayTicks {
			f.state = contactSent
			f.timer = 0
			f.name.SetText("")
			f.email.SetText("")
			f.message.SetText("")
			f.setDisabled(false)
			f.status.Label = "message sent. thanks!"
		}
	case contactSent:
		f.timer++
		if f.timer >= sentHoldTicks {
			f.state = contactIdle
			f.timer = 0
			f.status.Label = ""
		}
	}

	f.ui.Update()
}

func (f *ContactForm) Draw(screen *ebiten.Image) {
	if f == nil || screen == nil {
		return
	}
	f.ui.Draw(screen)
}
