// Package prior implements the Prior & Boundary Handler (spec §4.1):
// admissibility checking with single-bounce reflection at hard walls and
// modular wrapping for angular parameters.
package prior

import (
	"math"

	"github.com/gwastro/gwmcmc/internal/config"
)

// TwoPi is 2π, used for the wrap-2π prior kind.
const TwoPi = 2 * math.Pi

// Admit resolves a proposed value against a parameter's prior, returning the
// corrected value and whether it is admissible.
//
// Wrap modes always admit (reduced to the canonical positive representative
// mod the period). Reflect mode bounces once off an overshot wall; if the
// single reflection still lands outside [lower, upper] the proposal is
// rejected outright (spec §4.1 rationale: one bounce approximately preserves
// detailed balance for small overshoots, pathological jumps are rejected).
func Admit(value float64, d config.Descriptor) (corrected float64, admissible bool) {
	switch d.Prior {
	case config.Wrap2Pi:
		return wrap(value, TwoPi), true
	case config.WrapPi:
		return wrap(value, math.Pi), true
	default:
		return reflect(value, d.Lower, d.Upper)
	}
}

// wrap reduces value to [0, period).
func wrap(value, period float64) float64 {
	v := math.Mod(value, period)
	if v < 0 {
		v += period
	}
	return v
}

// reflect applies a single bounce off whichever wall was overshot.
func reflect(value, lower, upper float64) (float64, bool) {
	v := value
	switch {
	case v < lower:
		v = lower + math.Abs(v-lower)
	case v > upper:
		v = upper - math.Abs(v-upper)
	default:
		return v, true
	}
	if v < lower || v > upper {
		return value, false
	}
	return v, true
}

// AdmitVector applies Admit to every free parameter of a full state vector,
// in place, returning false (and leaving already-processed entries
// corrected) as soon as one parameter is inadmissible.
func AdmitVector(x []float64, descriptors []config.Descriptor) bool {
	for i, d := range descriptors {
		if !d.Free() {
			continue
		}
		v, ok := Admit(x[i], d)
		if !ok {
			return false
		}
		x[i] = v
	}
	return true
}
