// Package annealing implements the single-chain simulated-annealing
// temperature schedule used when parallel tempering is disabled (spec §4.7).
package annealing

import "math"

// Temperature returns T(n) = clamp(exp(ln(T0)*(Nburn-n)/(Nburn-Nburn0)), 1, T0),
// falling monotonically from T0 at n = Nburn0 to 1 at n = Nburn. If
// Nburn == Nburn0 the burn-in window has zero length and the chain is
// already at T = 1.
func Temperature(n, nBurn, nBurn0 int, t0 float64) float64 {
	if t0 <= 1 || nBurn == nBurn0 {
		return 1
	}
	frac := float64(nBurn-n) / float64(nBurn-nBurn0)
	t := math.Exp(math.Log(t0) * frac)
	if t > t0 {
		t = t0
	}
	if t < 1 {
		t = 1
	}
	return t
}
