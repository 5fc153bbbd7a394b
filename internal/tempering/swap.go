package tempering

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"

	"github.com/gwastro/gwmcmc/internal/chain"
	"github.com/gwastro/gwmcmc/internal/rng"
)

// SwapStats accumulates the all-pairs swap bookkeeping spec.md §3 requires:
// a pairwise matrix plus per-row/per-column totals.
type SwapStats struct {
	K        int
	Matrix   [][]int64
	RowTotal []int64
	ColTotal []int64
	Attempts int64 // outer iterations at which swaps were attempted
}

// NewSwapStats allocates bookkeeping for a K-rung ladder. When K == 1
// (parallel tempering disabled) the coordinator is inert, per spec §3's
// invariant.
func NewSwapStats(k int) *SwapStats {
	matrix := make([][]int64, k)
	for i := range matrix {
		matrix[i] = make([]int64, k)
	}
	return &SwapStats{
		K:        k,
		Matrix:   matrix,
		RowTotal: make([]int64, k),
		ColTotal: make([]int64, k),
	}
}

// AttemptAll runs the all-pairs swap protocol (spec §4.6) once: for every
// ordered pair (i, j) with i < j, computes the tempered acceptance ratio
// against the same-iteration log-likelihoods and swaps full parameter
// vectors on acceptance.
func (s *SwapStats) AttemptAll(chains []*chain.State, r *rng.Source) {
	if s.K <= 1 {
		return
	}
	s.Attempts++
	for i := 0; i < s.K; i++ {
		for j := i + 1; j < s.K; j++ {
			delta := (1/chains[i].Temperature - 1/chains[j].Temperature) * (chains[j].LogL - chains[i].LogL)
			if delta > 0 {
				delta = 0
			} else if delta < -30 {
				delta = -30
			}
			u := r.Uniform()
			if math.Exp(delta) > u {
				chain.Swap(chains[i], chains[j])
				s.Matrix[i][j]++
				s.RowTotal[i]++
				s.ColTotal[j]++
			}
		}
	}
}

// Summary is a diagnostic-only rollup of swap-acceptance rates across all
// pairs (SPEC_FULL.md §4.10 EXPANSION); it does not feed back into sampling.
type Summary struct {
	MedianAcceptance float64
	VarianceAcceptance float64
}

// Summarize computes the median and variance of per-pair acceptance rates.
// Returns an error if no swap round has been attempted yet or there are no
// chain pairs (K < 2); a single pair is summarized normally.
func (s *SwapStats) Summarize() (Summary, error) {
	if s.Attempts == 0 {
		return Summary{}, fmt.Errorf("tempering: no swap attempts recorded")
	}
	var rates []float64
	for i := 0; i < s.K; i++ {
		for j := i + 1; j < s.K; j++ {
			rates = append(rates, float64(s.Matrix[i][j])/float64(s.Attempts))
		}
	}
	if len(rates) == 0 {
		return Summary{}, fmt.Errorf("tempering: no chain pairs to summarize")
	}
	median, err := mstats.Median(rates)
	if err != nil {
		return Summary{}, fmt.Errorf("tempering: median: %w", err)
	}
	variance, err := mstats.Variance(rates)
	if err != nil {
		return Summary{}, fmt.Errorf("tempering: variance: %w", err)
	}
	return Summary{MedianAcceptance: median, VarianceAcceptance: variance}, nil
}
