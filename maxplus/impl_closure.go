// SPDX-License-Identifier: MIT
// Package: maxplus
//
// Purpose:
//   - Strongly transitive closure Γ(D) = (E ⊕ D)^(n−1) and weakly transitive
//     closure Δ(D) = D ⊗ Γ(D) of the definite matrix D = A − λ.
//   - Definiteness test: λ == 0 and Δ(D) == Γ(D).
//
// Contract:
//   - λ is always an explicit argument; nothing is cached on the Matrix.

package maxplus

import (
	"fmt"
	"math"
)

// Definiteness is the verdict of CheckDefinite.
type Definiteness int

const (
	// Definite: eigenvalue 0 and closures coincide.
	Definite Definiteness = iota
	// NonZeroEigenvalue: |λ| exceeds the tolerance.
	NonZeroEigenvalue
	// ClosureMismatch: Δ(D) differs from Γ(D) in at least one cell.
	ClosureMismatch
)

// String returns a short human-readable verdict.
func (d Definiteness) String() string {
	switch d {
	case Definite:
		return "definite"
	case NonZeroEigenvalue:
		return "eigenvalue is not zero"
	case ClosureMismatch:
		return "weak and strong closures differ"
	default:
		return fmt.Sprintf("Definiteness(%d)", int(d))
	}
}

// strongClosure builds M (D with a zero diagonal) and raises it to n−1.
// For n = 1 the exponent is 0 and the closure is the identity [[0]].
func strongClosure(d *Matrix) *Matrix {
	n := d.n
	m := d.Clone()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Unit()
	}
	if n == 1 {
		return m
	}

	res := m.Clone()
	for h := 1; h < n-1; h++ {
		res = mulInto(res, m)
	}

	return res
}

// StronglyTransitiveClosure returns Γ(D) for D = Shift(A, λ).
//
// Implementation:
//   - Stage 1: D = A − λ.
//   - Stage 2: M[i][i] = 0, M[i][j] = D[i][j] (ε stays ε).
//   - Stage 3: Γ = M^(n−1); the identity when n = 1.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
//
// Complexity:
//   - Time O(n⁴), Space O(n²).
func StronglyTransitiveClosure(a *Matrix, lambda float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opStrongClosure, err)
	}
	if err := validateLambda(lambda); err != nil {
		return nil, maxplusErrorf(opStrongClosure, err)
	}

	return strongClosure(shiftInto(a, lambda)), nil
}

// WeaklyTransitiveClosure returns Δ(D) = D ⊗ Γ(D) for D = Shift(A, λ).
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
//
// Complexity:
//   - Time O(n⁴), Space O(n²).
func WeaklyTransitiveClosure(a *Matrix, lambda float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opWeakClosure, err)
	}
	if err := validateLambda(lambda); err != nil {
		return nil, maxplusErrorf(opWeakClosure, err)
	}

	d := shiftInto(a, lambda)

	return mulInto(d, strongClosure(d)), nil
}

// CheckDefinite classifies A given its own eigenvalue λ.
//
// Implementation:
//   - Stage 1: |λ| > tol ⇒ NonZeroEigenvalue.
//   - Stage 2: compare Δ(A−λ) and Γ(A−λ) cell by cell within tol ⇒ ClosureMismatch or Definite.
//
// Notes:
//   - The analysis pipeline calls this on the shifted matrix with the shifted
//     eigenvalue, never on raw input.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
func CheckDefinite(a *Matrix, lambda float64, opts ...Option) (Definiteness, error) {
	if err := ValidateNotNil(a); err != nil {
		return ClosureMismatch, maxplusErrorf(opCheckDefinite, err)
	}
	if err := validateLambda(lambda); err != nil {
		return ClosureMismatch, maxplusErrorf(opCheckDefinite, err)
	}
	o := gatherOptions(opts...)

	if math.Abs(lambda) > o.tol {
		return NonZeroEigenvalue, nil
	}

	d := shiftInto(a, lambda)
	gamma := strongClosure(d)
	delta := mulInto(d, gamma)
	if !delta.Equal(gamma, o.tol) {
		return ClosureMismatch, nil
	}

	return Definite, nil
}

// IsDefinite reports whether CheckDefinite returns Definite.
func IsDefinite(a *Matrix, lambda float64, opts ...Option) (bool, error) {
	v, err := CheckDefinite(a, lambda, opts...)
	if err != nil {
		return false, err
	}

	return v == Definite, nil
}

// CriticalNodes returns, in ascending order, the vertices i with Δ(A−λ)[i][i] == 0,
// i.e. the vertices lying on a cycle of mean λ.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
func CriticalNodes(a *Matrix, lambda float64, opts ...Option) ([]int, error) {
	delta, err := WeaklyTransitiveClosure(a, lambda)
	if err != nil {
		return nil, maxplusErrorf(opCriticalNodes, err)
	}
	o := gatherOptions(opts...)

	var nodes []int
	for i := 0; i < delta.n; i++ {
		if delta.data[i*delta.n+i].IsZero(o.tol) {
			nodes = append(nodes, i)
		}
	}

	return nodes, nil
}
