package chain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetropolisAcceptAlwaysAcceptsImprovement(t *testing.T) {
	require.True(t, MetropolisAccept(-10, -5, 1.0, -1e300, 0.999999))
}

func TestMetropolisAcceptRejectsBelowFloor(t *testing.T) {
	require.False(t, MetropolisAccept(-10, -5, 1.0, 0, 0.0001))
}

func TestMetropolisAcceptRejectsNonFinite(t *testing.T) {
	require.False(t, MetropolisAccept(-10, math.NaN(), 1.0, -1e300, 0.5))
	require.False(t, MetropolisAccept(-10, math.Inf(1), 1.0, -1e300, 0.5))
}

// TestMetropolisAcceptClampsExponent covers the spec's [-30, 0] exponent
// clamp: a catastrophic worsening still has a nonzero (if tiny) acceptance
// chance rather than underflowing to exactly zero against any u in (0,1).
func TestMetropolisAcceptClampsExponent(t *testing.T) {
	accept := MetropolisAccept(1e6, -1e6, 1.0, -1e300, 0.9999999999)
	require.False(t, accept) // u^T this close to 1 beats exp(-30)
	accept = MetropolisAccept(1e6, -1e6, 1.0, -1e300, 1e-20)
	require.True(t, accept)
}

// TestAdaptSigmaMovesTowardTargetAcceptance covers spec.md §8 property 7:
// sigma increases on acceptance, decreases on rejection, and never goes
// negative.
func TestAdaptSigmaMovesTowardTargetAcceptance(t *testing.T) {
	up := AdaptSigma(1.0, 1.0, 0, true, false, 0)
	require.Greater(t, up, 1.0)

	down := AdaptSigma(1.0, 1.0, 0, false, false, 0)
	require.Less(t, down, 1.0)
}

func TestAdaptSigmaNeverNegative(t *testing.T) {
	sigma := 0.0001
	for i := int64(0); i < 100; i++ {
		sigma = AdaptSigma(sigma, 1.0, i, false, false, 0)
		require.GreaterOrEqual(t, sigma, 0.0)
	}
}

func TestAdaptSigmaCapsAngularAtWrapPeriod(t *testing.T) {
	sigma := 2 * math.Pi
	for i := int64(0); i < 1000; i++ {
		sigma = AdaptSigma(sigma, 10.0, i, true, true, math.Pi)
	}
	require.LessOrEqual(t, sigma, math.Pi)
}
