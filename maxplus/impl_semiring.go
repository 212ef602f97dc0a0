// SPDX-License-Identifier: MIT
// Package maxplus provides the (max, +) semiring kernels over Matrix:
// multiplication, exponentiation, matrix-vector product and the
// eigenvalue shift that produces the definite matrix.
//
// Purpose:
//   - Canonical semiring kernels with fixed i→j→k loop orders.
//   - Operation tags and the shared wrapper for uniform error reporting.
//
// Notes:
//   - Operands are never mutated; every kernel allocates its result.

package maxplus

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul            = "Mul"
	opPower          = "Power"
	opMatVec         = "MatVec"
	opShift          = "Shift"
	opFloydWarshall  = "FloydWarshall"
	opStrongClosure  = "StronglyTransitiveClosure"
	opWeakClosure    = "WeaklyTransitiveClosure"
	opCheckDefinite  = "CheckDefinite"
	opCriticalNodes  = "CriticalNodes"
	opFundamental    = "FundamentalVectors"
	opIndependent    = "Independent"
	opIndependentSet = "IndependentSubset"
	opEigenspace     = "FormatEigenspace"
	opParseRows      = "ParseRows"
)

// maxplusErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func maxplusErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulInto computes the semiring product of two same-dimension matrices.
// Callers validate dimensions; no errors are possible here.
//
// Determinism:
//   - Fixed i→j→k order; ⊕ is max, so accumulation order does not change the value.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func mulInto(a, b *Matrix) *Matrix {
	n := a.n
	res := newMatrix(n)

	var (
		i, j, k      int
		rowA, offRes int
		acc, av      Weight
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		for j = 0; j < n; j++ {
			acc = Eps()
			for k = 0; k < n; k++ {
				av = a.data[rowA+k]
				if av.IsEps() {
					continue // ε ⊗ x = ε contributes nothing to the max
				}
				acc = acc.Oplus(av.Otimes(b.data[k*n+j]))
			}
			offRes = rowA + j
			res.data[offRes] = acc
		}
	}

	return res
}

// Mul computes C = A ⊗ B, i.e. C[i][j] = max_k (A[i][k] + B[k][j]).
// C[i][j] is ε when every term is ε.
//
// Behavior highlights:
//   - Associative, not commutative; NewIdentity(n) is the neutral element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return nil, maxplusErrorf(opMul, err)
	}

	return mulInto(a, b), nil
}

// Power returns A^p computed with p−1 successive multiplications.
// Power(A, 1) is a copy of A; Power(A, 2) == Mul(A, A).
//
// Errors:
//   - ErrNilMatrix; ErrBadExponent for p <= 0.
//
// Complexity:
//   - Time O(p·n³), Space O(n²).
func Power(a *Matrix, p int) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opPower, err)
	}
	if p <= 0 {
		return nil, maxplusErrorf(opPower, fmt.Errorf("p=%d: %w", p, ErrBadExponent))
	}

	res := a.Clone()
	for h := 1; h < p; h++ {
		res = mulInto(res, a)
	}

	return res, nil
}

// MatVec computes y = A ⊗ x, i.e. y[i] = max_k (A[i][k] + x[k]).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != n).
//
// Complexity:
//   - Time O(n²), Space O(n).
func MatVec(a *Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.n); err != nil {
		return nil, maxplusErrorf(opMatVec, err)
	}

	n := a.n
	y := make(Vector, n)
	var i, k int
	for i = 0; i < n; i++ {
		acc := Eps()
		for k = 0; k < n; k++ {
			acc = acc.Oplus(a.data[i*n+k].Otimes(x[k]))
		}
		y[i] = acc
	}

	return y, nil
}

// Shift returns the definite matrix D with D[i][j] = A[i][j] − λ (ε stays ε).
// This is ordinary subtraction: it renormalizes the dominant cycle mean to 0.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Shift(a *Matrix, lambda float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opShift, err)
	}
	if err := validateLambda(lambda); err != nil {
		return nil, maxplusErrorf(opShift, err)
	}

	return shiftInto(a, lambda), nil
}

// shiftInto is the unchecked body of Shift.
func shiftInto(a *Matrix, lambda float64) *Matrix {
	res := newMatrix(a.n)
	for idx, w := range a.data {
		res.data[idx] = w.Shift(lambda)
	}

	return res
}
