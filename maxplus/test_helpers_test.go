// SPDX-License-Identifier: MIT
// Package maxplus_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (worked examples with hand-checked results).
//   - Keep fixture construction terse: rows of float64 with eps for the semiring zero.

package maxplus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/maxplus"
)

// eps is the float spelling of ε accepted by maxplus.NewFromFloats.
var eps = math.Inf(-1)

// tol is the comparison tolerance used by matrix assertions.
const tol = 1e-9

// MustMatrix builds a matrix from float rows or fails the test.
func MustMatrix(tb testing.TB, rows [][]float64) *maxplus.Matrix {
	tb.Helper()

	m, err := maxplus.NewFromFloats(rows)
	require.NoError(tb, err)

	return m
}

// MustVector builds a vector from floats (eps ⇒ ε).
func MustVector(vals ...float64) maxplus.Vector {
	v := make(maxplus.Vector, len(vals))
	for i, x := range vals {
		v[i] = maxplus.FromFloat(x)
	}

	return v
}

// AssertMatrixEqual fails unless got equals the float rows want within tol.
func AssertMatrixEqual(tb testing.TB, want [][]float64, got *maxplus.Matrix) {
	tb.Helper()

	exp := MustMatrix(tb, want)
	require.Truef(tb, exp.Equal(got, tol), "want:\n%s\ngot:\n%s", exp, got)
}

// twoByTwo is the worked example [[0,1],[2,0]] with λ = 1.5.
func twoByTwo(tb testing.TB) *maxplus.Matrix {
	return MustMatrix(tb, [][]float64{{0, 1}, {2, 0}})
}

// threeCycle is the pure cycle 1→2→3→1 with weights 2, 4, 3 and λ = 3.
func threeCycle(tb testing.TB) *maxplus.Matrix {
	return MustMatrix(tb, [][]float64{
		{eps, 2, eps},
		{eps, eps, 4},
		{3, eps, eps},
	})
}

// isolated is the 2×2 example padded with a vertex that has no edges.
func isolated(tb testing.TB) *maxplus.Matrix {
	return MustMatrix(tb, [][]float64{
		{0, 1, eps},
		{2, 0, eps},
		{eps, eps, eps},
	})
}
