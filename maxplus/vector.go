// SPDX-License-Identifier: MIT
// Package: maxplus
//
// Purpose:
//   - Fundamental eigenvectors: closure columns whose diagonal entry is 0.
//   - Max-plus independence predicate and greedy independent subset.
//
// Conventions (fixed for the whole package):
//   - Fundamental vectors are COLUMNS of the closure.
//   - Vectors of length ≤ 1 are dependent: the first coordinate defines c and
//     there is nothing left to disagree with it.
//   - IndependentSubset is greedy and pairwise; it is not a rank computation.

package maxplus

import (
	"fmt"
	"strconv"
	"strings"
)

// BasisSymbol prefixes the label of every fundamental vector (Δ1, Δ2, ...).
const BasisSymbol = "Δ"

// Vector is an ordered sequence of weights, one per matrix row.
type Vector []Weight

// Equal reports element-wise equality within tol.
func (v Vector) Equal(o Vector, tol float64) bool {
	if len(v) != len(o) {
		return false
	}
	for k := range v {
		if !v[k].Equal(o[k], tol) {
			return false
		}
	}

	return true
}

// Format renders the vector as a transposed column, e.g. "[0, -0.5, ε]ᵀ".
func (v Vector) Format(prec int) string {
	parts := make([]string, len(v))
	for k, w := range v {
		parts[k] = w.Format(prec)
	}

	return "[" + strings.Join(parts, _fmtSep) + "]ᵀ"
}

// String renders the vector in shortest exact form.
func (v Vector) String() string { return v.Format(DefaultPrecision) }

// LabeledVector is a fundamental vector with its origin.
type LabeledVector struct {
	Index  int    // closure column (or list position) the vector was taken from
	Label  string // BasisSymbol + (Index+1)
	Vector Vector
}

// label builds the canonical label for a zero-based index.
func label(idx int) string { return BasisSymbol + strconv.Itoa(idx+1) }

// Label attaches positional labels (Δ1, Δ2, ...) to plain vectors.
func Label(vectors []Vector) []LabeledVector {
	out := make([]LabeledVector, len(vectors))
	for i, v := range vectors {
		out[i] = LabeledVector{Index: i, Label: label(i), Vector: v}
	}

	return out
}

// FundamentalVectors scans the diagonal of closure and returns, in column order,
// every column i with closure[i][i] == 0 (within tolerance), labeled Δ<i+1>.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FundamentalVectors(closure *Matrix, opts ...Option) ([]LabeledVector, error) {
	if err := ValidateNotNil(closure); err != nil {
		return nil, maxplusErrorf(opFundamental, err)
	}
	o := gatherOptions(opts...)

	n := closure.n
	var out []LabeledVector
	for i := 0; i < n; i++ {
		if !closure.data[i*n+i].IsZero(o.tol) {
			continue
		}
		out = append(out, LabeledVector{Index: i, Label: label(i), Vector: closure.Col(i)})
	}

	return out, nil
}

// Independent reports whether d1 and d2 are linearly independent in the max-plus sense.
//
// Implementation:
//   - Stage 1: length check.
//   - Stage 2: walk coordinates; an ε in exactly one vector proves independence,
//     ε in both is skipped.
//   - Stage 3: the first finite pair fixes c = d1[k] − d2[k]; any later pair whose
//     difference departs from c by more than tol proves independence.
//   - Exhaustion without a mismatch proves dependence (d1 = c ⊗ d2).
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
//
// Complexity:
//   - Time O(n), Space O(1).
func Independent(d1, d2 Vector, opts ...Option) (bool, error) {
	if len(d1) != len(d2) {
		return false, maxplusErrorf(opIndependent, fmt.Errorf("len %d vs %d: %w", len(d1), len(d2), ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)

	var (
		c    float64
		seen bool
	)
	for k := range d1 {
		a, b := d1[k], d2[k]
		if a.IsEps() != b.IsEps() {
			return true, nil
		}
		if a.IsEps() {
			continue
		}
		diff := a.v - b.v
		if !seen {
			c, seen = diff, true
			continue
		}
		if diff-c > o.tol || c-diff > o.tol {
			return true, nil
		}
	}

	return false, nil
}

// IndependentSubset greedily keeps the first vector and then every later vector
// that is independent of ALL vectors kept so far. Order is first-seen order.
// Rejected vectors are never revisited.
//
// Errors:
//   - ErrDimensionMismatch when vectors have different lengths.
//
// Complexity:
//   - Time O(k²·n) for k input vectors.
func IndependentSubset(vectors []LabeledVector, opts ...Option) ([]LabeledVector, error) {
	if len(vectors) == 0 {
		return nil, nil
	}

	kept := []LabeledVector{vectors[0]}
	for _, cand := range vectors[1:] {
		accept := true
		for _, k := range kept {
			indep, err := Independent(k.Vector, cand.Vector, opts...)
			if err != nil {
				return nil, maxplusErrorf(opIndependentSet, err)
			}
			if !indep {
				accept = false
				break
			}
		}
		if accept {
			kept = append(kept, cand)
		}
	}

	return kept, nil
}
