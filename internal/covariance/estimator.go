// Package covariance implements the Covariance Estimator (spec §4.3): a
// sliding window of accepted states reduced to a mean, standard deviation,
// and lower-triangular sample covariance, whose Cholesky factor is adopted
// or rejected according to the "tightened diagonal" rule.
package covariance

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gwastro/gwmcmc/internal/linalg"
)

// Estimator accumulates a fixed-length window of sampled parameter vectors
// for one chain and decides, on demand, whether to adopt a freshly estimated
// Cholesky factor in place of the chain's current one.
type Estimator struct {
	nCorr    int
	free     []bool
	nParFit  int
	matAccFr float64

	window [][]float64 // [nCorr][P], circular fill, reset to empty after each Update
	iHist  int

	HistMean []float64
	HistDev  []float64

	// Generation counts how many factors have been proposed for adoption
	// (spec §4.3's corrUpdate): 0 = none yet, generations 1 and 2 are
	// always adopted, generations 3 and later are compared against mataccfr.
	// The caller owns the actual Cholesky factor (it lives on ChainState)
	// and passes it into Update to be mutated in place on adoption.
	Generation int
}

// NewEstimator allocates an estimator for p parameters with the given
// history window length and mataccfr threshold.
func NewEstimator(p, nCorr int, free []bool, matAccFr float64) *Estimator {
	window := make([][]float64, nCorr)
	for i := range window {
		window[i] = make([]float64, p)
	}
	return &Estimator{
		nCorr:    nCorr,
		free:     free,
		nParFit:  countFree(free),
		matAccFr: matAccFr,
		window:   window,
		HistMean: make([]float64, p),
		HistDev:  make([]float64, p),
	}
}

func countFree(free []bool) int {
	n := 0
	for _, f := range free {
		if f {
			n++
		}
	}
	return n
}

// AddSample records one accepted state into the window; once the window is
// Full, further samples are dropped. The caller is responsible for invoking
// Update once the window is Full; Update itself resets iHist to 0 (spec
// §4.3), so no separate clearing is needed.
func (e *Estimator) AddSample(x []float64) {
	if e.iHist < e.nCorr {
		copy(e.window[e.iHist], x)
		e.iHist++
	}
}

// Full reports whether the window holds a complete nCorr samples.
func (e *Estimator) Full() bool { return e.iHist >= e.nCorr }

// Reset discards the current window contents without touching L/Generation.
func (e *Estimator) Reset() { e.iHist = 0 }

// Update computes mean, standard deviation, and covariance over the current
// window, Cholesky-decomposes the covariance, and decides whether to adopt
// the new factor into currentL (P x P, lower-triangular, modified in place
// only on adoption). It always resets the window afterward.
//
// Returns whether the new factor was adopted.
func (e *Estimator) Update(currentL [][]float64) bool {
	defer e.Reset()

	p := len(e.free)
	n := e.iHist
	if n < 2 {
		return false
	}

	cols := make([][]float64, p)
	for i := 0; i < p; i++ {
		if !e.free[i] {
			continue
		}
		col := make([]float64, n)
		for s := 0; s < n; s++ {
			col[s] = e.window[s][i]
		}
		cols[i] = col
		mean := stat.Mean(col, nil)
		variance := stat.Variance(col, mean, nil)
		e.HistMean[i] = mean
		e.HistDev[i] = math.Sqrt(variance)
	}

	scratch := linalg.NewMatrix(p)
	for i := 0; i < p; i++ {
		if !e.free[i] {
			continue
		}
		for j := 0; j <= i; j++ {
			if !e.free[j] {
				continue
			}
			scratch[i][j] = sampleCovariance(cols[i], cols[j])
		}
	}

	ok := linalg.CholeskyInPlace(scratch, e.free)

	improved := 0
	if !ok {
		improved = -1
	} else {
		for i := 0; i < p; i++ {
			if !e.free[i] {
				continue
			}
			d := scratch[i][i]
			if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				improved = -1
				break
			}
			if d < currentL[i][i] {
				improved++
			}
		}
	}

	e.Generation++
	adopt := e.Generation <= 2
	if !adopt && improved >= 0 {
		adopt = float64(improved) >= e.matAccFr*float64(e.nParFit)
	}

	if adopt {
		for i := 0; i < p; i++ {
			copy(currentL[i], scratch[i])
		}
	}
	return adopt
}

// sampleCovariance computes the covariance between two equal-length columns
// with divisor n-1, matching spec §4.3's sample (not population) estimator.
func sampleCovariance(x, y []float64) float64 {
	n := len(x)
	mx := stat.Mean(x, nil)
	my := stat.Mean(y, nil)
	var sum float64
	for i := 0; i < n; i++ {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return sum / float64(n-1)
}
