// SPDX-License-Identifier: MIT
// Package maxplus: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the maxplus
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for invalid Option values.

package maxplus

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "maxplus: ..." for consistency and easy
// grepping. Kernels wrap with maxplusErrorf(op, err); callers match with errors.Is.
//
// ERROR PRIORITY:
// nil -> dimension -> index -> numeric value -> structural (exponent, basis size).

var (
	// ErrInvalidDimensions indicates a dimension outside [1, MaxDimension].
	// It is the "degenerate dimension" failure: raised before any allocation.
	ErrInvalidDimensions = errors.New("maxplus: dimension must be within [1, 7]")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("maxplus: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: matrices of different
	// dimension, vectors of different length, or non-square row input.
	ErrDimensionMismatch = errors.New("maxplus: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("maxplus: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf where a finite weight is required.
	// The semiring zero is the tagged ε, never a float infinity.
	ErrNaNInf = errors.New("maxplus: NaN or Inf encountered")

	// ErrMalformedWeight signals cell text that is neither a real number nor the ε token.
	ErrMalformedWeight = errors.New("maxplus: malformed weight")

	// ErrBadExponent is returned by Power for exponents p <= 0.
	ErrBadExponent = errors.New("maxplus: exponent must be positive")

	// ErrTooManyVectors is returned when a basis exceeds the scalar alphabet (MaxDimension symbols).
	ErrTooManyVectors = errors.New("maxplus: too many basis vectors")

	// ErrEmptyBasis is returned when an eigenspace is requested from zero vectors.
	ErrEmptyBasis = errors.New("maxplus: empty basis")
)
