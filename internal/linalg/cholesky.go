// Package linalg implements the numerical kernels the sampler's covariance
// machinery needs: an in-place, free-parameter-masked Cholesky decomposition
// that reports failure by zeroing its output rather than panicking (spec
// §4.2). gonum's mat.Cholesky is not used here — it operates on the whole
// matrix, reports failure via a boolean rather than a sentinel value, and has
// no notion of a free/fixed-parameter mask — so this kernel is hand-rolled,
// grounded on original_source/trunk/mcmc_mcmc.c's CholeskyDecompose.
package linalg

import "math"

// CholeskyInPlace computes the lower-triangular factor L of A = L Lᵀ,
// restricted to the rows/columns where free[i] is true; rows/columns where
// free[i] is false are left untouched. On success A holds L in its lower
// triangle. On failure (a non-positive diagonal sum at any free index, or a
// NaN/Inf), the entire matrix is zeroed and false is returned.
//
// A must be square (P x P) and is modified in place regardless of outcome.
func CholeskyInPlace(a [][]float64, free []bool) bool {
	p := len(a)
	for i := 0; i < p; i++ {
		if !free[i] {
			continue
		}
		for j := 0; j <= i; j++ {
			if !free[j] {
				continue
			}
			sum := a[i][j]
			for k := 0; k < j; k++ {
				if !free[k] {
					continue
				}
				sum -= a[i][k] * a[j][k]
			}
			if i == j {
				if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
					zero(a)
					return false
				}
				a[i][j] = math.Sqrt(sum)
			} else {
				diag := a[j][j]
				if diag <= 0 || math.IsNaN(diag) || math.IsInf(diag, 0) {
					zero(a)
					return false
				}
				a[i][j] = sum / diag
			}
		}
		// Zero the strict upper triangle at free rows and free columns so
		// the free block reliably holds only L (callers must not read above
		// the diagonal otherwise).
		for j := i + 1; j < p; j++ {
			if free[j] {
				a[i][j] = 0
			}
		}
	}
	return true
}

func zero(a [][]float64) {
	for i := range a {
		for j := range a[i] {
			a[i][j] = 0
		}
	}
}

// NewMatrix allocates a p x p matrix of zeros.
func NewMatrix(p int) [][]float64 {
	m := make([][]float64, p)
	for i := range m {
		m[i] = make([]float64, p)
	}
	return m
}
