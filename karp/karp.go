// SPDX-License-Identifier: MIT

package karp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maxplus/maxplus"
)

// NewSolver wraps m. The matrix is read, never copied or mutated.
//
// Errors:
//   - ErrNilMatrix when m is nil.
func NewSolver(m *maxplus.Matrix) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Solver{m: m}, nil
}

// Columns returns n+1 vectors: column 0 of A¹, A², …, Aⁿ⁺¹.
//
// Implementation:
//   - col[0] is column 0 of A; col[k+1] = A ⊗ col[k], because A^(k+1) = A ⊗ A^k.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (s *Solver) Columns() ([]maxplus.Vector, error) {
	n := s.m.Dim()
	cols := make([]maxplus.Vector, n+1)
	cols[0] = s.m.Col(0)

	var err error
	for k := 1; k <= n; k++ {
		if cols[k], err = maxplus.MatVec(s.m, cols[k-1]); err != nil {
			return nil, fmt.Errorf("karp: column %d: %w", k, err)
		}
	}

	return cols, nil
}

// Eigenvalue computes λ = max_i min_j (col[n][i] − col[j][i]) / (n − j), j = 0..n−1.
//
// Behavior highlights:
//   - A row whose col[n][i] is ε is skipped (no walk of length n+1 from i to 0).
//   - A term whose col[j][i] is ε counts as +∞ and drops out of the row minimum.
//   - The divisor n − j is always ≥ 1 since j < n.
//
// Errors:
//   - ErrNoCycle when every row is skipped.
//
// Notes:
//   - The value is the maximum cycle mean only when the digraph is strongly
//     connected; callers check definiteness before trusting it for closures.
//
// Complexity:
//   - Time O(n³) (dominated by Columns), Space O(n²).
func (s *Solver) Eigenvalue() (float64, error) {
	cols, err := s.Columns()
	if err != nil {
		return 0, err
	}

	n := s.m.Dim()
	var (
		i, j     int
		top, low float64
		best     = math.Inf(-1)
		found    bool
	)
	for i = 0; i < n; i++ {
		if cols[n][i].IsEps() {
			continue
		}
		top = cols[n][i].Float()

		rowMin := math.Inf(1)
		for j = 0; j < n; j++ {
			if cols[j][i].IsEps() {
				continue
			}
			low = cols[j][i].Float()
			rowMin = math.Min(rowMin, (top-low)/float64(n-j))
		}
		if math.IsInf(rowMin, 1) {
			continue
		}
		if !found || rowMin > best {
			best, found = rowMin, true
		}
	}
	if !found {
		return 0, ErrNoCycle
	}

	return best, nil
}

// Eigenvalue is a facade: NewSolver(m) followed by Solver.Eigenvalue.
func Eigenvalue(m *maxplus.Matrix) (float64, error) {
	s, err := NewSolver(m)
	if err != nil {
		return 0, err
	}

	return s.Eigenvalue()
}
