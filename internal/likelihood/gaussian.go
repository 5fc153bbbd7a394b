package likelihood

import "math"

// GaussianTarget is a deterministic multivariate-Gaussian stand-in
// for a real waveform/likelihood pipeline (spec.md §1's "out of scope"
// external collaborators). It exists purely so the testable properties of
// §8 (detailed balance, tempered swap correctness, adaptation invariants)
// and the end-to-end scenarios can run without a real waveform model.
//
// Localize is a no-op: this target has no detector-frame geometry.
//
// LogLikelihood is ℓ(x) = Offset - 1/2 xᵀ Σ⁻¹ x, where Σ is diagonal with
// entries Variances. Offset must be chosen large enough that ℓ stays
// positive over the region actually explored, since spec.md §4.4 treats
// ℓ <= 0 as unconditionally inadmissible and a real waveform likelihood is
// assumed (per spec.md §9's open question) never to be non-positive in its
// operating regime; Offset reproduces that assumption for the stub.
type GaussianTarget struct {
	Variances []float64
	Offset    float64
}

// NewGaussianTarget builds a target with the given diagonal variances and an
// offset of 1 + Σ 50/Variances[i], which keeps ℓ positive whenever every
// coordinate satisfies |x_i| <= 10.
func NewGaussianTarget(variances []float64) *GaussianTarget {
	offset := 0.0
	for _, v := range variances {
		offset += 50.0 / v
	}
	return &GaussianTarget{Variances: variances, Offset: offset + 1}
}

func (g *GaussianTarget) Localize([]float64) {}

func (g *GaussianTarget) LogLikelihood(params []float64) float64 {
	sum := 0.0
	for i, x := range params {
		if i >= len(g.Variances) {
			break
		}
		sum += x * x / g.Variances[i]
	}
	return g.Offset - 0.5*sum
}

// NaNGuard reports whether v is usable as a log-likelihood at all (neither
// NaN nor ±Inf). The sampler does not call it; chain.MetropolisAccept makes
// the same check itself.
func NaNGuard(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
