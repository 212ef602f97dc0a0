// SPDX-License-Identifier: MIT

package maxplus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/maxplus/maxplus"
)

func TestResolveOptions_Defaults(t *testing.T) {
	assert.Equal(t, maxplus.DefaultTolerance, maxplus.ResolveOptions().Tolerance())
	assert.Equal(t, maxplus.DefaultTolerance, maxplus.ResolveOptions(nil).Tolerance(), "nil options are skipped")
}

func TestWithTolerance(t *testing.T) {
	o := maxplus.ResolveOptions(maxplus.WithTolerance(1e-3), maxplus.WithTolerance(0))
	assert.Equal(t, 0.0, o.Tolerance(), "last option wins")
}

func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { maxplus.WithTolerance(tol) }, "tol=%v", tol)
	}
}
