package proposal

import (
	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/prior"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// Block runs the block Gaussian kernel (spec §4.4 "uncorrelated_block"):
// every free parameter is perturbed simultaneously, admitted against its own
// prior, and the whole move is accepted or rejected as one unit. There is
// no per-parameter adaptation in this branch, only acceptance counters.
func Block(s *chain.State, r *rng.Source, eval likelihood.Evaluator, minLogL float64) bool {
	copy(s.XProposed, s.X)

	allMult := allMultiplier(r)
	admissible := true
	for i, d := range s.Descriptors {
		if !d.Free() {
			continue
		}
		perMult := perParamMultiplier(r)
		z := r.Normal() * s.Sigma[i] * allMult * perMult
		s.LastJump[i] = z

		corrected, ok := prior.Admit(s.X[i]+z, d)
		if !ok {
			admissible = false
			continue
		}
		s.XProposed[i] = corrected
	}
	s.Admissible = admissible
	if !admissible {
		return false
	}

	eval.Localize(s.XProposed)
	ell := eval.LogLikelihood(s.XProposed)
	u := r.Uniform()
	if !chain.MetropolisAccept(s.LogL, ell, s.Temperature, minLogL, u) {
		return false
	}

	copy(s.X, s.XProposed)
	s.LogL = ell
	for i, d := range s.Descriptors {
		if d.Free() {
			s.Accepted[i]++
		}
	}
	s.RecordMax()
	return true
}
