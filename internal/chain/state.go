// Package chain owns per-temperature chain state (spec §3) and the
// Metropolis acceptance / Robbins-Monro adaptation logic (spec §4.4, §4.6
// component "Acceptance & Adaptation").
package chain

import (
	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/covariance"
	"github.com/gwastro/gwmcmc/internal/linalg"
)

// State holds everything spec.md §3's "Chain state" data model names for a
// single temperature rung.
type State struct {
	Descriptors []config.Descriptor
	Free        []bool

	Temperature float64

	X         []float64
	XProposed []float64

	LogL         float64
	LogLProposed float64

	MaxLogL    float64
	ArgMaxX    []float64

	Sigma []float64 // per-parameter adaptive proposal width
	Scale []float64 // per-parameter Robbins-Monro scale

	Accepted []int64 // per-parameter accepted-proposal counter

	LastJump []float64 // last proposed jump per parameter, for diagnostics

	SigmaCorr float64 // scalar correlated-proposal scale

	Admissible bool // prior-admissible flag for the current proposal

	Cov *covariance.Estimator
	L   [][]float64 // current Cholesky factor, P x P lower-triangular
}

// New allocates chain state for the given descriptor table, history window
// length, and matrix-acceptance threshold, seeded at x0 with log-likelihood
// logL0.
func New(descriptors []config.Descriptor, x0 []float64, logL0 float64, nCorr int, matAccFr float64, temperature float64) *State {
	p := len(descriptors)
	free := config.FreeMask(descriptors)

	sigma := make([]float64, p)
	scale := make([]float64, p)
	for i, d := range descriptors {
		sigma[i] = d.ProposalSigma
		scale[i] = d.ProposalSigma
	}

	s := &State{
		Descriptors: descriptors,
		Free:        free,
		Temperature: temperature,
		X:           append([]float64(nil), x0...),
		XProposed:   append([]float64(nil), x0...),
		LogL:        logL0,
		LogLProposed: logL0,
		MaxLogL:     logL0,
		ArgMaxX:     append([]float64(nil), x0...),
		Sigma:       sigma,
		Scale:       scale,
		Accepted:    make([]int64, p),
		LastJump:    make([]float64, p),
		SigmaCorr:   1.0,
		Cov:         covariance.NewEstimator(p, nCorr, free, matAccFr),
		L:           linalg.NewMatrix(p),
	}
	// Seed L with an identity-like diagonal of the initial proposal sigmas
	// so the correlated proposal is well-defined before the first
	// covariance update lands.
	for i, d := range descriptors {
		if free[i] {
			v := d.ProposalSigma
			if v <= 0 {
				v = 1
			}
			s.L[i][i] = v
		}
	}
	return s
}

// RecordMax updates the running best state if LogL improves on MaxLogL.
func (s *State) RecordMax() {
	if s.LogL > s.MaxLogL {
		s.MaxLogL = s.LogL
		copy(s.ArgMaxX, s.X)
	}
}

// Swap exchanges the full parameter vector and log-likelihood with other.
// Used by the parallel-tempering swap coordinator (spec §4.6).
func Swap(a, b *State) {
	a.X, b.X = b.X, a.X
	a.LogL, b.LogL = b.LogL, a.LogL
}
