package chain

import "math"

// TargetAcceptance is α* in spec §4.4's Robbins-Monro update.
const TargetAcceptance = 0.25

// MetropolisAccept implements spec §4.4's concrete acceptance test:
// accept iff exp(clamp(logLProposed - logLCurrent)) > u^T and
// logLProposed > minLogL, where clamp bounds the exponent to [-30, 0].
//
// Written exactly in the spec's literal (unreduced) form — exp(Δ) > u^T is
// algebraically equivalent to exp(Δ/T) > u, but the literal form is what
// spec.md §4.4 specifies and is reproduced verbatim rather than simplified.
func MetropolisAccept(logLCurrent, logLProposed, temperature, minLogL, u float64) bool {
	if logLProposed <= minLogL {
		return false
	}
	if math.IsNaN(logLProposed) || math.IsInf(logLProposed, 0) {
		return false
	}
	delta := logLProposed - logLCurrent
	if delta > 0 {
		delta = 0
	} else if delta < -30 {
		delta = -30
	}
	return math.Exp(delta) > math.Pow(u, temperature)
}

// AdaptSigma applies the Robbins-Monro update to sigma[p] (spec §4.4):
// on acceptance, sigma += gamma*(1 - alpha*); on rejection, sigma -= gamma*alpha*,
// where gamma = scale/(iter+1)^(1/6). Sigma is clamped at zero from below and,
// for angular parameters, capped at the wrap period.
func AdaptSigma(sigma, scale float64, iter int64, accepted bool, angular bool, wrapPeriod float64) float64 {
	gamma := scale / math.Pow(float64(iter+1), 1.0/6.0)
	if accepted {
		sigma += gamma * (1 - TargetAcceptance)
	} else {
		sigma -= gamma * TargetAcceptance
	}
	if sigma < 0 {
		sigma = 0
	}
	if angular && sigma > wrapPeriod {
		sigma = wrapPeriod
	}
	return sigma
}
