// SPDX-License-Identifier: MIT

package maxplus

import (
	"fmt"
	"strings"
)

// scalarSymbols names the coefficients of an eigenspace, one per basis vector.
// ε is skipped on purpose: it already denotes the semiring zero.
var scalarSymbols = [MaxDimension]string{"α", "β", "γ", "δ", "ζ", "η", "θ"}

// ScalarSymbol returns the i-th coefficient name, or "" when i is outside the alphabet.
func ScalarSymbol(i int) string {
	if i < 0 || i >= len(scalarSymbols) {
		return ""
	}

	return scalarSymbols[i]
}

// FormatEigenspace renders the max-plus span of basis as
//
//	V(A) = { α⊗Δ1 ⊕ β⊗Δ3 , α, β ∈ ℝ* }
//
// assigning scalar symbols positionally.
//
// Errors:
//   - ErrEmptyBasis for an empty basis.
//   - ErrTooManyVectors when len(basis) exceeds MaxDimension.
func FormatEigenspace(basis []LabeledVector) (string, error) {
	if len(basis) == 0 {
		return "", maxplusErrorf(opEigenspace, ErrEmptyBasis)
	}
	if len(basis) > len(scalarSymbols) {
		return "", maxplusErrorf(opEigenspace, fmt.Errorf("%d vectors: %w", len(basis), ErrTooManyVectors))
	}

	var terms, scalars strings.Builder
	for i, v := range basis {
		if i > 0 {
			terms.WriteString(" ⊕ ")
		}
		terms.WriteString(scalarSymbols[i])
		terms.WriteString("⊗")
		terms.WriteString(v.Label)

		scalars.WriteString(", ")
		scalars.WriteString(scalarSymbols[i])
	}

	return "V(A) = { " + terms.String() + " " + scalars.String() + " ∈ ℝ* }", nil
}
