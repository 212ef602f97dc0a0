package karp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/karp"
	"github.com/katalvlaran/maxplus/maxplus"
)

var eps = math.Inf(-1)

func mustMatrix(t *testing.T, rows [][]float64) *maxplus.Matrix {
	t.Helper()
	m, err := maxplus.NewFromFloats(rows)
	require.NoError(t, err)
	return m
}

func TestEigenvalue(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"two by two", [][]float64{{0, 1}, {2, 0}}, 1.5},
		{"self loop", [][]float64{{5}}, 5},
		{"negative self loop", [][]float64{{-2}}, -2},
		{"three cycle", [][]float64{{eps, 2, eps}, {eps, eps, 4}, {3, eps, eps}}, 3},
		{"loop beats cycle", [][]float64{{4, 1}, {1, 0}}, 4},
		{"diagonal zeros", [][]float64{{0, eps, eps}, {eps, 0, eps}, {eps, eps, 0}}, 0},
		{"already definite", [][]float64{{-1.5, -0.5}, {0.5, -1.5}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := karp.Eigenvalue(mustMatrix(t, tt.rows))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEigenvalue_NoCycle(t *testing.T) {
	_, err := karp.Eigenvalue(mustMatrix(t, [][]float64{{eps, 1}, {eps, eps}}))
	require.ErrorIs(t, err, karp.ErrNoCycle)

	_, err = karp.Eigenvalue(mustMatrix(t, [][]float64{{eps}}))
	require.ErrorIs(t, err, karp.ErrNoCycle)
}

func TestNewSolver_Nil(t *testing.T) {
	_, err := karp.NewSolver(nil)
	require.ErrorIs(t, err, karp.ErrNilMatrix)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)

	_, err = karp.Eigenvalue(nil)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
}

func TestColumns(t *testing.T) {
	s, err := karp.NewSolver(mustMatrix(t, [][]float64{{0, 1}, {2, 0}}))
	require.NoError(t, err)

	cols, err := s.Columns()
	require.NoError(t, err)
	require.Len(t, cols, 3, "n+1 columns")

	want := [][]float64{{0, 2}, {3, 2}, {3, 5}}
	for k, w := range want {
		exp := maxplus.Vector{maxplus.Finite(w[0]), maxplus.Finite(w[1])}
		assert.Truef(t, exp.Equal(cols[k], 0), "col[%d] = %s", k, cols[k])
	}
}

// The columns must match column 0 of explicit powers A^(k+1).
func TestColumns_MatchPowers(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, eps, -2}, {0, 3, eps}, {eps, 4, 0.5}})
	s, err := karp.NewSolver(a)
	require.NoError(t, err)

	cols, err := s.Columns()
	require.NoError(t, err)
	for k := range cols {
		p, err := maxplus.Power(a, k+1)
		require.NoError(t, err)
		assert.Truef(t, p.Col(0).Equal(cols[k], 1e-12), "k=%d", k)
	}
}

func TestEigenvalue_DoesNotMutate(t *testing.T) {
	a := mustMatrix(t, [][]float64{{0, 1}, {2, 0}})
	before := a.Clone()
	_, err := karp.Eigenvalue(a)
	require.NoError(t, err)
	assert.True(t, before.Equal(a, 0))
}
