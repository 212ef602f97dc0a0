// SPDX-License-Identifier: MIT

package karp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxplus/maxplus"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil *maxplus.Matrix was passed to NewSolver.
	// It wraps maxplus.ErrNilMatrix so either sentinel matches.
	ErrNilMatrix = fmt.Errorf("karp: %w", maxplus.ErrNilMatrix)

	// ErrNoCycle indicates that no walk of length n+1 ends at vertex 0,
	// so the digraph has no cycle the column principle can see and λ = ε.
	ErrNoCycle = errors.New("karp: no cycle reaches vertex 0")
)

// Solver wraps one matrix by reference and computes its max-plus eigenvalue.
// It has no mutable state; build one per matrix, query, discard.
type Solver struct {
	m *maxplus.Matrix
}
