package startup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/rng"
)

func TestSearchSkipsRedrawWhenNoStartModeNeedsIt(t *testing.T) {
	d := []config.Descriptor{
		{ShortName: "a", Start: config.StartBest, BestValue: 3, Prior: config.Reflect, Lower: -10, Upper: 10},
	}
	eval := likelihood.NewGaussianTarget([]float64{1})
	r := rng.New(51)

	res := Search(d, r, eval, -1e300, 1.0, 100)
	require.Equal(t, []float64{3}, res.X)
	require.Equal(t, 0, res.Attempts)
}

// TestSearchConvergesForAchievableFloor covers spec.md §4.8's rejection loop:
// given a floor the uniform-prior draw can clear quickly, Search converges
// within a small number of attempts.
func TestSearchConvergesForAchievableFloor(t *testing.T) {
	d := []config.Descriptor{
		{ShortName: "a", Start: config.StartUniformPrior, Prior: config.Reflect, Lower: -1, Upper: 1},
	}
	eval := likelihood.NewGaussianTarget([]float64{100})
	r := rng.New(52)

	res := Search(d, r, eval, eval.LogLikelihood([]float64{0}) - 2, 1.0, 1000)
	require.True(t, res.Converged)
	require.Greater(t, res.Attempts, 0)
}

func TestSearchGivesUpAfterMaxAttempts(t *testing.T) {
	d := []config.Descriptor{
		{ShortName: "a", Start: config.StartUniformPrior, Prior: config.Reflect, Lower: -1000, Upper: 1000},
	}
	eval := likelihood.NewGaussianTarget([]float64{1})
	r := rng.New(53)

	// A floor essentially unreachable from this prior within few attempts.
	res := Search(d, r, eval, 1e9, 1.0, 10)
	require.False(t, res.Converged)
	require.Equal(t, 10, res.Attempts)
}
