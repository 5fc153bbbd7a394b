// Package tempering implements the temperature ladder and the all-pairs
// swap coordinator (spec §4.5, §4.6).
package tempering

import "math"

// Ladder holds the per-chain base temperatures and sinusoidal-modulation
// amplitudes (spec §4.5). T[0] is always 1 and Ampl[0] is always 0.
type Ladder struct {
	Temps []float64
	Ampl  []float64
	NCorr int // modulation period divisor, 5*NCorr
}

// NewGeometricLadder builds a K-rung geometric ladder T_i = tempMax^(i/(K-1))
// (spec §4.5 mode 1/2). When sinusoidal is true, per-chain amplitudes are
// computed per mode 2; otherwise they are all zero (mode 1).
func NewGeometricLadder(k int, tempMax float64, sinusoidal bool, nCorr int) *Ladder {
	temps := make([]float64, k)
	temps[0] = 1
	for i := 1; i < k; i++ {
		temps[i] = math.Pow(tempMax, float64(i)/float64(k-1))
	}
	return newLadder(temps, sinusoidal, nCorr)
}

// NewManualLadder uses caller-specified temperatures (spec §4.5 mode 3/4).
// temps[0] is forced to 1 regardless of the input, per spec.md §3's
// invariant that T0 = 1 exactly.
func NewManualLadder(temps []float64, sinusoidal bool, nCorr int) *Ladder {
	t := append([]float64(nil), temps...)
	if len(t) > 0 {
		t[0] = 1
	}
	return newLadder(t, sinusoidal, nCorr)
}

func newLadder(temps []float64, sinusoidal bool, nCorr int) *Ladder {
	k := len(temps)
	ampl := make([]float64, k)
	if sinusoidal {
		for i := 1; i < k; i++ {
			r := temps[i] / temps[i-1]
			d := math.Abs(temps[i] - temps[i-1])
			a := math.Min(3*d*r/(r+1), d)
			if i > 1 && k > 10 {
				d2 := math.Abs(temps[i] - temps[i-2])
				a = math.Min(a, d2)
			}
			ampl[i] = a
		}
	}
	return &Ladder{Temps: temps, Ampl: ampl, NCorr: nCorr}
}

// K is the number of rungs.
func (l *Ladder) K() int { return len(l.Temps) }

// At returns the effective temperature for chain i at outer iteration n,
// applying the sinusoidal modulation term Ai*(-1)^i*sin(2πn/(5*NCorr))
// when Ampl[i] != 0 (spec §4.5).
func (l *Ladder) At(i, n int) float64 {
	if l.Ampl[i] == 0 {
		return l.Temps[i]
	}
	sign := 1.0
	if i%2 == 1 {
		sign = -1.0
	}
	phase := 2 * math.Pi * float64(n) / (5 * float64(l.NCorr))
	return l.Temps[i] + l.Ampl[i]*sign*math.Sin(phase)
}
