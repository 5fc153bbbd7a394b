// Package startup implements the offset-startup search (spec §4.8): drawing
// an admissible initial state whose log-likelihood clears a floor.
// driver.New replicates the result across every temperature rung.
package startup

import (
	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/prior"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// Result is the outcome of Search.
type Result struct {
	X         []float64
	LogL      float64
	Attempts  int
	Converged bool // true if LogL >= minLogL + 1 was reached
}

// DefaultMaxAttempts bounds the rejection loop so a pathological
// injection/waveform mismatch cannot hang the sampler (spec §4.8's "break"
// condition, made concrete: give up after this many draws and proceed with
// the last one, as spec §7 requires reporting).
const DefaultMaxAttempts = 100000

// Search seeds an initial state per each descriptor's start mode, then, if
// any parameter uses a Gaussian-around or uniform-prior start mode, redraws
// just those parameters in a rejection loop until the log-likelihood clears
// minLogL+1 or maxAttempts is exhausted.
func Search(descriptors []config.Descriptor, r *rng.Source, eval likelihood.Evaluator, minLogL, offsetX float64, maxAttempts int) Result {
	x := make([]float64, len(descriptors))
	var redraw []int

	for i, d := range descriptors {
		switch d.Start {
		case config.StartBest, config.StartGaussianAroundBest:
			x[i] = d.BestValue
		case config.StartInjection, config.StartGaussianAroundInjection:
			x[i] = d.InjectionValue
		case config.StartUniformPrior:
			x[i] = d.BestValue
		}
		if needsRedraw(d.Start) {
			redraw = append(redraw, i)
		}
	}

	if len(redraw) == 0 {
		eval.Localize(x)
		ell := eval.LogLikelihood(x)
		return Result{X: x, LogL: ell, Converged: ell >= minLogL+1}
	}

	var ell float64
	attempts := 0
	for {
		attempts++
		for _, i := range redraw {
			d := descriptors[i]
			x[i] = drawCandidate(d, r, offsetX)
		}
		eval.Localize(x)
		ell = eval.LogLikelihood(x)
		if ell >= minLogL+1 {
			return Result{X: x, LogL: ell, Attempts: attempts, Converged: true}
		}
		if attempts >= maxAttempts {
			return Result{X: x, LogL: ell, Attempts: attempts, Converged: false}
		}
	}
}

func needsRedraw(mode config.StartMode) bool {
	return mode == config.StartGaussianAroundBest ||
		mode == config.StartGaussianAroundInjection ||
		mode == config.StartUniformPrior
}

func drawCandidate(d config.Descriptor, r *rng.Source, offsetX float64) float64 {
	var val float64
	switch d.Start {
	case config.StartGaussianAroundBest:
		val = d.BestValue + r.Normal()*offsetX*d.ProposalSigma
	case config.StartGaussianAroundInjection:
		val = d.InjectionValue + r.Normal()*offsetX*d.ProposalSigma
	case config.StartUniformPrior:
		val = d.Lower + r.Uniform()*(d.Upper-d.Lower)
	default:
		return d.BestValue
	}
	if corrected, ok := prior.Admit(val, d); ok {
		return corrected
	}
	return val
}
