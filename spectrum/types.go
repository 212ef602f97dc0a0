// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/maxplus/maxplus"
)

// ErrNotDefinite is matched (errors.Is) by every *NotDefiniteError.
var ErrNotDefinite = errors.New("spectrum: matrix is not definite")

// Reason tells why a matrix was rejected as non-definite.
type Reason int

const (
	// ReasonNonZeroEigenvalue: the shifted matrix still has |λ| above tolerance.
	ReasonNonZeroEigenvalue Reason = iota + 1
	// ReasonClosureMismatch: Δ(D) and Γ(D) differ.
	ReasonClosureMismatch
	// ReasonNoCycle: no cycle reaches vertex 0, the eigenvalue is ε.
	ReasonNoCycle
)

// String returns a short human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonNonZeroEigenvalue:
		return "eigenvalue of the definite matrix is not zero"
	case ReasonClosureMismatch:
		return "weakly and strongly transitive closures differ"
	case ReasonNoCycle:
		return "no cycle reaches vertex 0"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// NotDefiniteError is the domain precondition failure: no eigenspace exists.
// It is distinct from malformed input (maxplus.ErrMalformedWeight) and from a
// bad dimension (maxplus.ErrInvalidDimensions).
type NotDefiniteError struct {
	Eigenvalue float64 // eigenvalue of the input matrix, −Inf for ReasonNoCycle
	Shifted    float64 // eigenvalue of the shifted matrix (≈ 0 for sane input)
	Reason     Reason
	Err        error // underlying cause, e.g. karp.ErrNoCycle
}

// Error implements error.
func (e *NotDefiniteError) Error() string {
	return fmt.Sprintf("spectrum: matrix is not definite (λ=%s): %s", maxplus.FromFloat(e.Eigenvalue), e.Reason)
}

// Is makes errors.Is(err, ErrNotDefinite) succeed.
func (e *NotDefiniteError) Is(target error) bool { return target == ErrNotDefinite }

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *NotDefiniteError) Unwrap() error { return e.Err }

// Stats records timing of one analysis.
type Stats struct {
	Duration time.Duration
}

// Report is the outcome of one analysis session, in the order the stages run.
// On a NotDefiniteError the report is returned alongside the error with every
// field up to and including Definite populated. For ReasonNoCycle only Input,
// Components and Irreducible are set and Eigenvalue is −Inf (ε).
type Report struct {
	ID        uuid.UUID
	Tolerance float64

	Input       *maxplus.Matrix
	Components  [][]int // SCCs of the precedence digraph
	Irreducible bool
	Eigenvalue  float64
	Definite    *maxplus.Matrix // D = A − λ

	FloydWarshall *maxplus.Matrix // max-relaxation F-W matrix of D
	StrongClosure *maxplus.Matrix // Γ(D)
	WeakClosure   *maxplus.Matrix // Δ(D)
	CriticalNodes []int

	Fundamental []maxplus.LabeledVector
	Basis       []maxplus.LabeledVector
	Eigenspace  string

	Stats Stats
}
