package proposal

import (
	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// Kernel identifies which proposal kernel ran, for diagnostics.
type Kernel int

const (
	KernelComponentwise Kernel = iota
	KernelBlock
	KernelCorrelated
)

func (k Kernel) String() string {
	switch k {
	case KernelBlock:
		return "block"
	case KernelCorrelated:
		return "correlated"
	default:
		return "componentwise"
	}
}

// Mix holds the per-iteration proposal-mix fractions (spec §4.4): a draw
// above CorrFrac goes to an uncorrelated proposal, of which a fraction
// BlockFrac is the block kernel and the rest componentwise; at or below
// CorrFrac, the correlated kernel runs.
type Mix struct {
	BlockFrac    float64
	CorrFrac     float64
	AdaptationOn bool
	MinLogL      float64
}

// Step draws the kernel selector and runs the chosen kernel once.
func (m Mix) Step(s *chain.State, r *rng.Source, eval likelihood.Evaluator, iter int64) Kernel {
	u := r.Uniform()
	if u > m.CorrFrac {
		u2 := r.Uniform()
		if u2 < m.BlockFrac {
			Block(s, r, eval, m.MinLogL)
			return KernelBlock
		}
		Componentwise(s, r, eval, m.MinLogL, m.AdaptationOn, iter)
		return KernelComponentwise
	}
	Correlated(s, r, eval, m.MinLogL)
	return KernelCorrelated
}
