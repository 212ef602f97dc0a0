package maxplus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/maxplus"
)

func TestMul_Worked(t *testing.T) {
	a := MustMatrix(t, [][]float64{{0, 1}, {2, 0}})
	b := MustMatrix(t, [][]float64{{eps, 3}, {-1, eps}})

	// C[0][0] = max(0+ε, 1−1) = 0; C[0][1] = max(0+3, 1+ε) = 3
	// C[1][0] = max(2+ε, 0−1) = −1; C[1][1] = max(2+3, 0+ε) = 5
	c, err := maxplus.Mul(a, b)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{0, 3}, {-1, 5}}, c)
}

func TestMul_AllEpsTermsYieldEps(t *testing.T) {
	a := MustMatrix(t, [][]float64{{eps, 1}, {eps, eps}})
	c, err := maxplus.Mul(a, a)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{eps, eps}, {eps, eps}}, c)
}

func TestMul_Errors(t *testing.T) {
	_, err := maxplus.Mul(nil, twoByTwo(t))
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)

	_, err = maxplus.Mul(twoByTwo(t), threeCycle(t))
	require.ErrorIs(t, err, maxplus.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Mul:")
}

func TestMul_IdentityLaw(t *testing.T) {
	for _, a := range []*maxplus.Matrix{twoByTwo(t), threeCycle(t), isolated(t)} {
		e, err := maxplus.NewIdentity(a.Dim())
		require.NoError(t, err)

		left, err := maxplus.Mul(e, a)
		require.NoError(t, err)
		right, err := maxplus.Mul(a, e)
		require.NoError(t, err)

		assert.True(t, a.Equal(left, 0), "E⊗A = A")
		assert.True(t, a.Equal(right, 0), "A⊗E = A")
	}
}

func TestMul_Associative(t *testing.T) {
	a := MustMatrix(t, [][]float64{{1, eps, -2}, {0, 3, eps}, {eps, 4, 0.5}})
	b := threeCycle(t)
	c := MustMatrix(t, [][]float64{{0, 1, 2}, {eps, eps, -1}, {7, eps, 0}})

	ab, _ := maxplus.Mul(a, b)
	abc1, err := maxplus.Mul(ab, c)
	require.NoError(t, err)

	bc, _ := maxplus.Mul(b, c)
	abc2, err := maxplus.Mul(a, bc)
	require.NoError(t, err)

	assert.True(t, abc1.Equal(abc2, tol), "(A⊗B)⊗C = A⊗(B⊗C)")
}

func TestPower(t *testing.T) {
	a := twoByTwo(t)

	p1, err := maxplus.Power(a, 1)
	require.NoError(t, err)
	assert.True(t, a.Equal(p1, 0), "A¹ = A")
	assert.NotSame(t, a, p1, "A¹ is a copy")

	p2, err := maxplus.Power(a, 2)
	require.NoError(t, err)
	sq, _ := maxplus.Mul(a, a)
	assert.True(t, sq.Equal(p2, 0), "A² = A⊗A")
	AssertMatrixEqual(t, [][]float64{{3, 1}, {2, 3}}, p2)

	p3, err := maxplus.Power(threeCycle(t), 3)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{9, eps, eps}, {eps, 9, eps}, {eps, eps, 9}}, p3)
}

func TestPower_Errors(t *testing.T) {
	for _, p := range []int{0, -1} {
		_, err := maxplus.Power(twoByTwo(t), p)
		require.ErrorIs(t, err, maxplus.ErrBadExponent)
	}

	_, err := maxplus.Power(nil, 2)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
}

func TestShift(t *testing.T) {
	d, err := maxplus.Shift(isolated(t), 1.5)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{
		{-1.5, -0.5, eps},
		{0.5, -1.5, eps},
		{eps, eps, eps},
	}, d)

	_, err = maxplus.Shift(twoByTwo(t), math.NaN())
	require.ErrorIs(t, err, maxplus.ErrNaNInf)
	_, err = maxplus.Shift(nil, 0)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
}

// After shifting by the true eigenvalue the heaviest closed walk of length n weighs 0.
func TestShift_PowerHasZeroMaxDiagonal(t *testing.T) {
	tests := []struct {
		name   string
		a      *maxplus.Matrix
		lambda float64
	}{
		{"two by two", twoByTwo(t), 1.5},
		{"three cycle", threeCycle(t), 3},
		{"self loop", MustMatrix(t, [][]float64{{5}}), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := maxplus.Shift(tt.a, tt.lambda)
			require.NoError(t, err)
			dn, err := maxplus.Power(d, d.Dim())
			require.NoError(t, err)

			best := maxplus.Eps()
			for _, w := range dn.Diagonal() {
				best = best.Oplus(w)
			}
			assert.True(t, best.IsZero(tol), "max diag of Dⁿ = %s", best)
		})
	}
}

func TestMatVec(t *testing.T) {
	y, err := maxplus.MatVec(twoByTwo(t), MustVector(0, eps))
	require.NoError(t, err)
	assert.True(t, y.Equal(MustVector(0, 2), 0))

	_, err = maxplus.MatVec(twoByTwo(t), MustVector(0))
	require.ErrorIs(t, err, maxplus.ErrDimensionMismatch)
}
