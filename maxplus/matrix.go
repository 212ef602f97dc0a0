// SPDX-License-Identifier: MIT

// Package maxplus - square semiring matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major n×n buffer of tagged weights with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels in this package index m.data directly; external code goes through At/Set.
//   - A Matrix is read-only for the duration of an analysis; Clone before mutating a shared one.
//
// Complexity quicksheet:
//   - NewMatrix: O(n²) ε-init; At/Set: O(1); Clone: O(n²).

package maxplus

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with method context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square n×n max-plus matrix.
//   - n is fixed at construction (1 ≤ n ≤ MaxDimension).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Matrix struct {
	n    int      // dimension
	data []Weight // row-major storage (len == n*n)
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates an n×n matrix with every cell ε.
//
// Errors:
//   - ErrInvalidDimensions when n is outside [1, MaxDimension].
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewMatrix(n int) (*Matrix, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, err
	}

	return newMatrix(n), nil
}

// newMatrix allocates without validation; kernels call it with an already validated n.
func newMatrix(n int) *Matrix {
	// make() zero-fills; the zero Weight is ε.
	return &Matrix{n: n, data: make([]Weight, n*n)}
}

// NewIdentity returns E_n: 0 on the diagonal, ε elsewhere.
// E is the neutral element of Mul.
func NewIdentity(n int) (*Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Unit()
	}

	return m, nil
}

// NewFromRows builds a matrix from n rows of n weights each.
//
// Errors:
//   - ErrInvalidDimensions when len(rows) is outside [1, MaxDimension].
//   - ErrDimensionMismatch when any row length differs from len(rows).
//   - ErrNaNInf when a finite weight carries NaN/±Inf.
func NewFromRows(rows [][]Weight) (*Matrix, error) {
	n := len(rows)
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells: %w", i, len(row), ErrDimensionMismatch)
		}
		for j, w := range row {
			if err = m.Set(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NewFromFloats builds a matrix from float rows; math.Inf(-1) denotes ε.
func NewFromFloats(rows [][]float64) (*Matrix, error) {
	ws := make([][]Weight, len(rows))
	for i, row := range rows {
		ws[i] = make([]Weight, len(row))
		for j, v := range row {
			ws[i][j] = FromFloat(v)
		}
	}

	return NewFromRows(ws)
}

// Dim returns the dimension n. Complexity: O(1).
func (m *Matrix) Dim() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the weight at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (Weight, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return Weight{}, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores w at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for a finite weight carrying NaN/±Inf.
func (m *Matrix) Set(row, col int, w Weight) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if err = validateFinite(w); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = w

	return nil
}

// SetFloat stores the finite value v at (row, col).
func (m *Matrix) SetFloat(row, col int, v float64) error { return m.Set(row, col, Finite(v)) }

// SetEps clears the edge (row, col) to ε.
func (m *Matrix) SetEps(row, col int) error { return m.Set(row, col, Eps()) }

// Clone returns a deep copy. Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	cp := make([]Weight, len(m.data))
	copy(cp, m.data)

	return &Matrix{n: m.n, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) Vector {
	if i < 0 || i >= m.n {
		return nil
	}
	v := make(Vector, m.n)
	copy(v, m.data[i*m.n:(i+1)*m.n])

	return v
}

// Col returns a copy of column j, or nil when j is out of range.
func (m *Matrix) Col(j int) Vector {
	if j < 0 || j >= m.n {
		return nil
	}
	v := make(Vector, m.n)
	for i := 0; i < m.n; i++ {
		v[i] = m.data[i*m.n+j]
	}

	return v
}

// Rows returns a deep copy of the cells as nested slices.
func (m *Matrix) Rows() [][]Weight {
	out := make([][]Weight, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// Diagonal returns a copy of the main diagonal.
func (m *Matrix) Diagonal() Vector {
	v := make(Vector, m.n)
	for i := 0; i < m.n; i++ {
		v[i] = m.data[i*m.n+i]
	}

	return v
}

// Equal reports whether a and b have the same dimension and every cell is Equal within tol.
// A nil matrix equals only another nil matrix.
func (m *Matrix) Equal(b *Matrix, tol float64) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.n != b.n {
		return false
	}
	for idx := range m.data {
		if !m.data[idx].Equal(b.data[idx], tol) {
			return false
		}
	}

	return true
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,w).
// Stops early when f returns false.
func (m *Matrix) Do(f func(i, j int, w Weight) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Format renders rows as "[a, b]\n" lines with prec significant digits and ε for the semiring zero.
// Complexity: O(n²).
func (m *Matrix) Format(prec int) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(m.data[base+j].Format(prec))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// String renders the matrix in shortest exact form.
func (m *Matrix) String() string { return m.Format(DefaultPrecision) }

// Grid returns the formatted cells as strings, ready for table renderers.
func (m *Matrix) Grid(prec int) [][]string {
	out := make([][]string, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]string, m.n)
		for j := 0; j < m.n; j++ {
			out[i][j] = m.data[i*m.n+j].Format(prec)
		}
	}

	return out
}
