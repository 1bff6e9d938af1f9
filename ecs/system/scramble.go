package system

import (
	"math/rand"

	"github.com/Abhishek10745/folio/ecs"
	"github.com/Abhishek10745/folio/ecs/component"
)

const scrambleCharset = "!<>-_\\/[]{}=+*^?#________"

// ScrambleSystem locks in one rune of the target per delay tick, left to
// right, while the unrevealed tail churns through random glyphs.
type ScrambleSystem struct {
	rng *rand.Rand
}

func NewScrambleSystem(rng *rand.Rand) *ScrambleSystem {
	return &ScrambleSystem{rng: rng}
}

func (s *ScrambleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.ScrambleComponent, func(e ecs.Entity, sc *component.Scramble) {
		if sc.Done {
			return
		}
		target := []rune(sc.Target)
		if sc.Revealed >= len(target) {
			sc.Text = sc.Target
			sc.Done = true
			return
		}

		delay := sc.Delay
		if delay <= 0 {
			delay = 1
		}
		sc.Timer++
		if sc.Timer >= delay {
			sc.Timer = 0
			sc.Revealed++
		}

		out := make([]rune, len(target))
		copy(out, target[:min(sc.Revealed, len(target))])
		chars := []rune(scrambleCharset)
		for i := sc.Revealed; i < len(target); i++ {
			if target[i] == ' ' {
				out[i] = ' '
				continue
			}
			out[i] = chars[s.rng.Intn(len(chars))]
		}
		sc.Text = string(out)
		if sc.Revealed >= len(target) {
			sc.Text = sc.Target
			sc.Done = true
		}
	})
}

// RestartScramble re-arms a scramble so the heading churns again, used when
// a section is re-activated.
func RestartScramble(sc *component.Scramble) {
	if sc == nil {
		return
	}
	sc.Revealed = 0
	sc.Timer = 0
	sc.Done = false
	sc.Text = ""
}
