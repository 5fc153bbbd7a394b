package linalg

import (
	"math"
	"testing"
)

func allFree(p int) []bool {
	f := make([]bool, p)
	for i := range f {
		f[i] = true
	}
	return f
}

// TestCholeskyIdentity covers spec.md §8 property 3: for a positive-definite
// symmetric matrix, L L^T reconstructs A within 1e-10.
func TestCholeskyIdentity(t *testing.T) {
	a := [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	}
	free := allFree(3)
	if ok := CholeskyInPlace(a, free); !ok {
		t.Fatalf("expected successful decomposition")
	}

	// Reconstruct L L^T and compare to the original matrix.
	want := [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k <= minInt(i, j); k++ {
				sum += a[i][k] * a[j][k]
			}
			if math.Abs(sum-want[i][j]) > 1e-10 {
				t.Fatalf("L L^T [%d][%d] = %v, want %v", i, j, sum, want[i][j])
			}
		}
	}
}

// TestCholeskyRankDeficient covers spec.md §8 scenario D: a non-PD input
// (here, a matrix with a negative diagonal) returns the zero matrix.
func TestCholeskyRankDeficient(t *testing.T) {
	a := [][]float64{
		{-1, 0},
		{0, 1},
	}
	free := allFree(2)
	if ok := CholeskyInPlace(a, free); ok {
		t.Fatalf("expected decomposition to fail")
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != 0 {
				t.Fatalf("expected zero matrix on failure, got a[%d][%d]=%v", i, j, a[i][j])
			}
		}
	}
}

func TestCholeskyRespectsFreeMask(t *testing.T) {
	a := [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, -1}, // would fail decomposition if this row/col participated
	}
	free := []bool{true, true, false}
	if ok := CholeskyInPlace(a, free); !ok {
		t.Fatalf("expected success when the problematic row is fixed, not free")
	}
	if a[2][2] != -1 {
		t.Fatalf("fixed row/col must be left untouched, got %v", a[2][2])
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
