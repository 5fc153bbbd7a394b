// Package proposal implements the three Metropolis-Hastings proposal
// kernels (spec §4.4): componentwise adaptive Gaussian, block Gaussian, and
// covariance-correlated Gaussian, each overlaid with rare large-jump
// excursions.
package proposal

import "github.com/gwastro/gwmcmc/internal/rng"

// allMultiplier draws the all-parameter large-jump multiplier: 100 with
// probability 1e-4, else 10 with probability 1e-3, else 1 (spec §4.4).
func allMultiplier(r *rng.Source) float64 {
	u := r.Uniform()
	switch {
	case u < 1e-4:
		return 100
	case u < 1e-3:
		return 10
	default:
		return 1
	}
}

// perParamMultiplier draws a large-jump multiplier for a single parameter,
// independently of the all-parameter draw and of every other parameter:
// 100 with probability 1e-3, else 10 with probability 1e-2, else 1.
func perParamMultiplier(r *rng.Source) float64 {
	u := r.Uniform()
	switch {
	case u < 1e-3:
		return 100
	case u < 1e-2:
		return 10
	default:
		return 1
	}
}
