package maxplus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/maxplus"
)

func TestEdges(t *testing.T) {
	edges := maxplus.Edges(threeCycle(t))
	assert.Equal(t, []maxplus.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 0, Weight: 3},
	}, edges)

	assert.Nil(t, maxplus.Edges(nil))
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name        string
		a           *maxplus.Matrix
		want        [][]int
		irreducible bool
	}{
		{"three cycle", threeCycle(t), [][]int{{0, 1, 2}}, true},
		{"two by two", twoByTwo(t), [][]int{{0, 1}}, true},
		{"isolated vertex", isolated(t), [][]int{{0, 1}, {2}}, false},
		{"chain", MustMatrix(t, [][]float64{{eps, 1, eps}, {eps, eps, 1}, {eps, eps, eps}}), [][]int{{0}, {1}, {2}}, false},
		{"two cycles joined one way", MustMatrix(t, [][]float64{
			{eps, 1, eps, eps},
			{1, eps, 1, eps},
			{eps, eps, eps, 1},
			{eps, eps, 1, eps},
		}), [][]int{{0, 1}, {2, 3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := maxplus.Components(tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			irr, err := maxplus.IsIrreducible(tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.irreducible, irr)
		})
	}

	_, err := maxplus.Components(nil)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
}
