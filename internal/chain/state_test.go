package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwastro/gwmcmc/internal/config"
)

func testDescriptors() []config.Descriptor {
	return []config.Descriptor{
		{Code: 0, ShortName: "mc", ProposalSigma: 0.1, Prior: config.Reflect, Lower: 0, Upper: 100},
		{Code: 1, ShortName: "eta", ProposalSigma: 0, Prior: config.Reflect, Lower: 0, Upper: 1},
	}
}

func TestNewSeedsCorrelationFactorDiagonal(t *testing.T) {
	d := testDescriptors()
	s := New(d, []float64{10, 0.2}, -5, 100, 0.5, 1.0)

	require.Equal(t, 0.1, s.L[0][0])
	require.Equal(t, 1.0, s.L[1][1], "zero ProposalSigma falls back to 1")
	require.Equal(t, 0.0, s.L[1][0])
}

func TestRecordMaxOnlyUpdatesOnImprovement(t *testing.T) {
	d := testDescriptors()
	s := New(d, []float64{10, 0.2}, -5, 100, 0.5, 1.0)

	s.LogL = -10
	s.RecordMax()
	require.Equal(t, -5.0, s.MaxLogL)

	s.LogL = -1
	s.X = []float64{11, 0.3}
	s.RecordMax()
	require.Equal(t, -1.0, s.MaxLogL)
	require.Equal(t, []float64{11, 0.3}, s.ArgMaxX)
}

func TestSwapExchangesStateOnly(t *testing.T) {
	d := testDescriptors()
	a := New(d, []float64{1, 2}, -1, 100, 0.5, 1.0)
	b := New(d, []float64{3, 4}, -2, 100, 0.5, 10.0)

	Swap(a, b)

	require.Equal(t, []float64{3, 4}, a.X)
	require.Equal(t, []float64{1, 2}, b.X)
	require.Equal(t, -2.0, a.LogL)
	require.Equal(t, -1.0, b.LogL)
	// Temperature is not part of a swap — only the parameter vector and
	// likelihood move between rungs (spec §4.6).
	require.Equal(t, 1.0, a.Temperature)
	require.Equal(t, 10.0, b.Temperature)
}
