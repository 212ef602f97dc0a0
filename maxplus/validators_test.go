// SPDX-License-Identifier: MIT

package maxplus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/maxplus"
)

func TestValidateDimension(t *testing.T) {
	for n := 1; n <= maxplus.MaxDimension; n++ {
		assert.NoError(t, maxplus.ValidateDimension(n))
	}
	for _, n := range []int{0, -3, maxplus.MaxDimension + 1} {
		require.ErrorIs(t, maxplus.ValidateDimension(n), maxplus.ErrInvalidDimensions)
	}
}

func TestValidateSameDim(t *testing.T) {
	assert.NoError(t, maxplus.ValidateSameDim(twoByTwo(t), twoByTwo(t)))
	require.ErrorIs(t, maxplus.ValidateSameDim(nil, twoByTwo(t)), maxplus.ErrNilMatrix)
	require.ErrorIs(t, maxplus.ValidateSameDim(twoByTwo(t), nil), maxplus.ErrNilMatrix)
	require.ErrorIs(t, maxplus.ValidateSameDim(twoByTwo(t), threeCycle(t)), maxplus.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, maxplus.ValidateVecLen(MustVector(1, 2), 2))
	require.ErrorIs(t, maxplus.ValidateVecLen(MustVector(1), 2), maxplus.ErrDimensionMismatch)
}
