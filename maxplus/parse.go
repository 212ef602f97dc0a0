// SPDX-License-Identifier: MIT

package maxplus

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// epsTokens are the accepted spellings of the semiring zero (compared case-insensitively).
var epsTokens = map[string]struct{}{
	"ε":    {},
	"eps":  {},
	"e":    {},
	"-inf": {},
	"-∞":   {},
}

// ParseWeight parses cell text: a finite real number or an ε token
// ("ε", "eps", "e", "-inf", "-∞"). Surrounding spaces are ignored.
//
// Errors:
//   - ErrMalformedWeight for anything else, including NaN and ±Inf spellings
//     other than the ε tokens.
func ParseWeight(s string) (Weight, error) {
	tok := strings.ToLower(strings.TrimSpace(s))
	if _, ok := epsTokens[tok]; ok {
		return Eps(), nil
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Weight{}, fmt.Errorf("%q: %w", s, ErrMalformedWeight)
	}

	return Finite(v), nil
}

// ParseRows builds a matrix from cell text, row by row.
//
// Errors:
//   - ErrInvalidDimensions when len(cells) is outside [1, MaxDimension].
//   - ErrDimensionMismatch when a row does not have len(cells) cells.
//   - ErrMalformedWeight wrapped with the cell coordinates.
func ParseRows(cells [][]string) (*Matrix, error) {
	n := len(cells)
	m, err := NewMatrix(n)
	if err != nil {
		return nil, maxplusErrorf(opParseRows, err)
	}

	var w Weight
	for i, row := range cells {
		if len(row) != n {
			return nil, maxplusErrorf(opParseRows, fmt.Errorf("row %d has %d cells: %w", i, len(row), ErrDimensionMismatch))
		}
		for j, s := range row {
			if w, err = ParseWeight(s); err != nil {
				return nil, maxplusErrorf(opParseRows, fmt.Errorf("cell(%d,%d): %w", i, j, err))
			}
			m.data[i*n+j] = w
		}
	}

	return m, nil
}
