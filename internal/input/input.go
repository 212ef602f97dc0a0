// Package input turns user-supplied text (TOML files, --row flags) into
// validated max-plus matrices.
//
// A matrix file looks like:
//
//	dimension = 3          # optional, must match the number of rows
//	rows = [
//	  [0,   1,   "ε"],
//	  [2,   0,   4.5],
//	  ["ε", -1,  0  ],
//	]
//
// Numbers may be integers or floats; the zero token may be spelled "ε", "eps",
// "e", "-inf" or "-∞".
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/maxplus/maxplus"
)

// File is the TOML layout of a matrix file.
type File struct {
	Dimension int     `toml:"dimension"`
	Rows      [][]any `toml:"rows"`
}

// LoadFile reads and decodes a TOML matrix file.
func LoadFile(path string) (*maxplus.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode parses TOML bytes into a matrix.
func Decode(data []byte) (*maxplus.Matrix, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if f.Dimension != 0 && f.Dimension != len(f.Rows) {
		return nil, fmt.Errorf("dimension %d but %d rows: %w", f.Dimension, len(f.Rows), maxplus.ErrDimensionMismatch)
	}

	cells := make([][]string, len(f.Rows))
	for i, row := range f.Rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s, err := cellText(v)
			if err != nil {
				return nil, fmt.Errorf("cell(%d,%d): %w", i, j, err)
			}
			cells[i][j] = s
		}
	}

	return maxplus.ParseRows(cells)
}

// cellText normalizes a decoded TOML value to the text ParseWeight understands.
func cellText(v any) (string, error) {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case string:
		return x, nil
	default:
		return "", fmt.Errorf("%v (%T): %w", v, v, maxplus.ErrMalformedWeight)
	}
}

// ParseRowFlags parses repeated --row values, each a whitespace- or comma-separated
// list of cells, e.g. "0 1 ε" or "0,1,eps".
func ParseRowFlags(rows []string) (*maxplus.Matrix, error) {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = strings.FieldsFunc(r, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
	}

	return maxplus.ParseRows(cells)
}

// Encode renders m as a TOML matrix file; ε cells become the "ε" string.
func Encode(m *maxplus.Matrix) ([]byte, error) {
	f := File{Dimension: m.Dim(), Rows: make([][]any, m.Dim())}
	for i, row := range m.Rows() {
		f.Rows[i] = make([]any, len(row))
		for j, w := range row {
			if v, ok := w.Value(); ok {
				f.Rows[i][j] = v
			} else {
				f.Rows[i][j] = maxplus.EpsSymbol
			}
		}
	}

	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(f); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return []byte(b.String()), nil
}
