package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/Abhishek10745/folio/common"
)

func main() {
	section := flag.String("section", "", "initial section id (about, projects, skills, contact)")
	debug := flag.Bool("debug", false, "show debug overlay and hot-reload specs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	reduced := flag.Bool("reduced", false, "reduced motion: mobile particle tier everywhere")
	skipBoot := flag.Bool("skip-boot", false, "skip the boot sequence")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("abhishek.dev")

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		// The copy-email button degrades to a no-op.
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	game := NewGame(Options{
		Section:     *section,
		Debug:       *debug,
		Reduced:     *reduced,
		SkipBoot:    *skipBoot,
		ClipboardOK: clipboardOK,
	})

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
