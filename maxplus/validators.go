// SPDX-License-Identifier: MIT
// Package: maxplus
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/length checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Dimension).

package maxplus

import (
	"fmt"
	"math"
)

// MaxDimension is the largest supported matrix dimension (and scalar alphabet size).
const MaxDimension = 7

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDimension ensures 1 <= n <= MaxDimension.
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n < 1 || n > MaxDimension {
		return validatorErrorf("ValidateDimension", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDim is the composite NotNil(a) → NotNil(b) → equal dimension check.
// Complexity: O(1).
func ValidateSameDim(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n.
// Complexity: O(1).
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects finite-tagged NaN/±Inf payloads.
func validateFinite(w Weight) error {
	if w.finite && (math.IsNaN(w.v) || math.IsInf(w.v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// validateLambda rejects NaN/±Inf eigenvalues before shifting.
func validateLambda(lambda float64) error {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return validatorErrorf("validateLambda", ErrNaNInf)
	}

	return nil
}
