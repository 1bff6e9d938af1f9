package system

import (
	"testing"

	"github.com/Abhishek10745/folio/common"
)

func TestLinkAlpha(t *testing.T) {
	const threshold = 20.0

	cases := []struct {
		name string
		d    float64
		want float64
	}{
		{"touching", 0, 1},
		{"at_threshold_excluded", 20, 0},
		{"beyond_threshold", 25, 0},
		{"halfway", 10, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := LinkAlpha(c.d, threshold); got != c.want {
				t.Fatalf("LinkAlpha(%v, %v) = %v, want %v", c.d, threshold, got, c.want)
			}
		})
	}
}

// Two particles at (0,0) and (10,0) with threshold 20 link; moved to
// distance 25 the link disappears.
func TestPairLinkScenario(t *testing.T) {
	d := common.Dist(0, 0, 10, 0)
	if LinkAlpha(d, 20) <= 0 {
		t.Fatalf("particles at distance %v should link under threshold 20", d)
	}

	d = common.Dist(0, 0, 25, 0)
	if LinkAlpha(d, 20) != 0 {
		t.Fatalf("particles at distance %v must not link under threshold 20", d)
	}
}

func TestLinkAlphaMonotonic(t *testing.T) {
	prev := LinkAlpha(0, 140)
	for d := 1.0; d < 140; d++ {
		cur := LinkAlpha(d, 140)
		if cur >= prev {
			t.Fatalf("alpha not strictly decreasing at d=%v: %v >= %v", d, cur, prev)
		}
		prev = cur
	}
}
