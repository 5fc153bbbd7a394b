package proposal

import (
	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/prior"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// Correlated runs the covariance-correlated Gaussian kernel (spec §4.4): a
// length-P standard normal vector, scaled by sigma_corr and the large-jump
// multipliers, is transformed through the chain's current lower-triangular
// Cholesky factor to produce a correlated jump. Accepted moves grow
// sigma_corr tenfold; moves rejected by the likelihood shrink it by half;
// moves rejected by the prior leave it unchanged (spec §4.4).
func Correlated(s *chain.State, r *rng.Source, eval likelihood.Evaluator, minLogL float64) bool {
	p := len(s.Descriptors)
	z := make([]float64, p)
	allMult := allMultiplier(r)
	for i := range z {
		perMult := perParamMultiplier(r)
		z[i] = r.Normal() * s.SigmaCorr * allMult * perMult
	}

	delta := make([]float64, p)
	for i := 0; i < p; i++ {
		if !s.Free[i] {
			continue
		}
		var sum float64
		for k := 0; k <= i; k++ {
			sum += s.L[i][k] * z[k]
		}
		delta[i] = sum
	}

	copy(s.XProposed, s.X)
	admissible := true
	for i, d := range s.Descriptors {
		if !d.Free() {
			continue
		}
		s.LastJump[i] = delta[i]
		corrected, ok := prior.Admit(s.X[i]+delta[i], d)
		if !ok {
			admissible = false
			continue
		}
		s.XProposed[i] = corrected
	}
	s.Admissible = admissible
	if !admissible {
		return false // sigma_corr unchanged on prior rejection
	}

	eval.Localize(s.XProposed)
	ell := eval.LogLikelihood(s.XProposed)
	u := r.Uniform()
	if !chain.MetropolisAccept(s.LogL, ell, s.Temperature, minLogL, u) {
		s.SigmaCorr *= 0.5
		return false
	}

	copy(s.X, s.XProposed)
	s.LogL = ell
	for i, d := range s.Descriptors {
		if d.Free() {
			s.Accepted[i]++
		}
	}
	s.SigmaCorr *= 10
	s.RecordMax()
	return true
}
