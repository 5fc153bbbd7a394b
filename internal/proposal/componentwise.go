package proposal

import (
	"math"

	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/prior"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// wrapPeriod returns the angular-wrap cap sigma adaptation is clamped to
// (spec §4.4), or +Inf for non-angular parameters.
func wrapPeriod(d config.Descriptor) float64 {
	switch d.Prior {
	case config.Wrap2Pi:
		return prior.TwoPi
	case config.WrapPi:
		return math.Pi
	default:
		return math.Inf(1)
	}
}

// Componentwise runs one full scan of the componentwise Gaussian kernel
// (spec §4.4 "uncorrelated_single") over every free parameter in order,
// each proposed, prior-checked, and accepted/rejected independently against
// the others' current values. Returns the number of parameters accepted
// this scan.
func Componentwise(s *chain.State, r *rng.Source, eval likelihood.Evaluator, minLogL float64, adaptationOn bool, iter int64) int {
	accepted := 0
	allMult := allMultiplier(r)
	for i, d := range s.Descriptors {
		if !d.Free() {
			continue
		}

		copy(s.XProposed, s.X)

		perMult := perParamMultiplier(r)
		z := r.Normal() * s.Sigma[i] * allMult * perMult
		s.LastJump[i] = z

		proposedVal := s.X[i] + z
		corrected, admissible := prior.Admit(proposedVal, d)
		s.Admissible = admissible

		didAccept := false
		if admissible {
			s.XProposed[i] = corrected
			eval.Localize(s.XProposed)
			ell := eval.LogLikelihood(s.XProposed)
			u := r.Uniform()
			if chain.MetropolisAccept(s.LogL, ell, s.Temperature, minLogL, u) {
				s.X[i] = corrected
				s.LogL = ell
				s.Accepted[i]++
				s.RecordMax()
				didAccept = true
				accepted++
			}
		}

		if adaptationOn {
			s.Sigma[i] = chain.AdaptSigma(s.Sigma[i], s.Scale[i], iter, didAccept, d.Angular, wrapPeriod(d))
		}
	}
	return accepted
}
