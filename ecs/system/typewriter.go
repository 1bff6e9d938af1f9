package system

import (
	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

// TypewriterSystem advances typewriter components one rune per delay tick,
// holding at a fully typed phrase, then deleting back and moving to the next
// phrase.
type TypewriterSystem struct{}

func NewTypewriterSystem() *TypewriterSystem {
	return &TypewriterSystem{}
}

func (s *TypewriterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TypewriterComponent, func(e ecs.Entity, tw *component.Typewriter) {
		if len(tw.Phrases) == 0 {
			return
		}
		step(tw)
	})
}

func step(tw *component.Typewriter) {
	phrase := []rune(tw.Phrases[tw.Phrase%len(tw.Phrases)])

	if tw.Hold > 0 {
		tw.Hold--
		return
	}

	delay := tw.TypeDelay
	if tw.Deleting {
		delay = tw.DeleteDelay
	}
	tw.Timer++
	if tw.Timer < delay {
		return
	}
	tw.Timer = 0

	if tw.Deleting {
		if tw.Pos > 0 {
			tw.Pos--
		}
		if tw.Pos == 0 {
			tw.Deleting = false
			tw.Phrase = (tw.Phrase + 1) % len(tw.Phrases)
		}
	} else {
		if tw.Pos < len(phrase) {
			tw.Pos++
		}
		if tw.Pos == len(phrase) {
			tw.Deleting = true
			tw.Hold = tw.HoldDelay
		}
	}

	phrase = []rune(tw.Phrases[tw.Phrase%len(tw.Phrases)])
	if tw.Pos > len(phrase) {
		tw.Pos = len(phrase)
	}
	tw.Text = string(phrase[:tw.Pos])
}
