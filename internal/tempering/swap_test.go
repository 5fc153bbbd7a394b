package tempering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/rng"
)

func swapTestDescriptors() []config.Descriptor {
	return []config.Descriptor{
		{Code: 0, ShortName: "a", ProposalSigma: 0.1, Prior: config.Reflect, Lower: -10, Upper: 10},
	}
}

func TestAttemptAllInertWhenSingleChain(t *testing.T) {
	d := swapTestDescriptors()
	chains := []*chain.State{chain.New(d, []float64{0}, 0, 10, 0.5, 1.0)}
	s := NewSwapStats(1)
	r := rng.New(41)
	s.AttemptAll(chains, r)
	require.Equal(t, int64(0), s.Attempts)
}

// TestAttemptAllSwapsEqualLikelihoodChains covers spec.md §8 property 6:
// when both chains have identical log-likelihoods, the tempered acceptance
// ratio is exp(0) = 1 > u for any u in (0,1), so a swap between differently
// tempered chains at equal likelihood always succeeds.
func TestAttemptAllSwapsEqualLikelihoodChains(t *testing.T) {
	d := swapTestDescriptors()
	c0 := chain.New(d, []float64{1}, -5, 10, 0.5, 1.0)
	c1 := chain.New(d, []float64{2}, -5, 10, 0.5, 4.0)
	s := NewSwapStats(2)
	r := rng.New(42)

	s.AttemptAll([]*chain.State{c0, c1}, r)
	require.Equal(t, int64(1), s.Matrix[0][1])
	require.Equal(t, 2.0, c0.X[0])
	require.Equal(t, 1.0, c1.X[0])
}

func TestSummarizeRequiresAttempts(t *testing.T) {
	s := NewSwapStats(3)
	_, err := s.Summarize()
	require.Error(t, err)
}

func TestSummarizeComputesMedianAndVariance(t *testing.T) {
	d := swapTestDescriptors()
	c0 := chain.New(d, []float64{1}, -5, 10, 0.5, 1.0)
	c1 := chain.New(d, []float64{2}, -5, 10, 0.5, 4.0)
	c2 := chain.New(d, []float64{3}, -5, 10, 0.5, 16.0)
	s := NewSwapStats(3)
	r := rng.New(43)

	for i := 0; i < 20; i++ {
		s.AttemptAll([]*chain.State{c0, c1, c2}, r)
	}
	summary, err := s.Summarize()
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.MedianAcceptance, 0.0)
	require.LessOrEqual(t, summary.MedianAcceptance, 1.0)
	require.GreaterOrEqual(t, summary.VarianceAcceptance, 0.0)
}
