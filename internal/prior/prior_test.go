package prior

import (
	"math"
	"testing"

	"github.com/gwastro/gwmcmc/internal/config"
)

func TestReflectWithinBounds(t *testing.T) {
	d := config.Descriptor{Prior: config.Reflect, Lower: -1, Upper: 1}
	v, ok := Admit(0.5, d)
	if !ok || v != 0.5 {
		t.Fatalf("got (%v, %v), want (0.5, true)", v, ok)
	}
}

// TestReflectCorrectness covers spec.md §8 property 8: a proposal landing
// delta above upper with delta < (upper-lower) reflects to upper-delta; a
// larger overshoot is rejected.
func TestReflectCorrectness(t *testing.T) {
	d := config.Descriptor{Prior: config.Reflect, Lower: 0, Upper: 10}

	v, ok := Admit(13, d) // delta = 3 < range (10)
	if !ok {
		t.Fatalf("expected admissible reflection, got rejected")
	}
	want := 10 - 3.0
	if math.Abs(v-want) > 1e-12 {
		t.Fatalf("got %v, want %v", v, want)
	}

	_, ok = Admit(25, d) // delta = 15 > range (10)
	if ok {
		t.Fatalf("expected rejection for overshoot beyond the range")
	}
}

func TestReflectLowerWall(t *testing.T) {
	d := config.Descriptor{Prior: config.Reflect, Lower: 0, Upper: 10}
	v, ok := Admit(-2, d)
	if !ok || math.Abs(v-2) > 1e-12 {
		t.Fatalf("got (%v, %v), want (2, true)", v, ok)
	}
}

// TestWrapTwoPi covers spec.md §8 scenario F.
func TestWrapTwoPi(t *testing.T) {
	d := config.Descriptor{Prior: config.Wrap2Pi}
	x := 1.0
	v, ok := Admit(x+3*math.Pi, d)
	if !ok {
		t.Fatalf("wrap proposals are always admissible")
	}
	want := math.Mod(x+math.Pi, TwoPi)
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestWrapPi(t *testing.T) {
	d := config.Descriptor{Prior: config.WrapPi}
	v, ok := Admit(-0.5, d)
	if !ok || v < 0 || v >= math.Pi {
		t.Fatalf("wrap-π must land in [0, π), got %v (ok=%v)", v, ok)
	}
}
