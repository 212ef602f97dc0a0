package maxplus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxplus/maxplus"
)

// ---------- Floyd–Warshall ----------

func TestFloydWarshall_TwoByTwo(t *testing.T) {
	a := twoByTwo(t)
	before := a.Clone()

	f, err := maxplus.FloydWarshall(a, 1.5)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{0, -0.5}, {0.5, 0}}, f)
	assert.True(t, before.Equal(a, 0), "input must not be mutated")
}

func TestFloydWarshall_ThreeCycle(t *testing.T) {
	// D = [[ε,−1,ε],[ε,ε,1],[0,ε,ε]]; every vertex lies on the zero-mean cycle.
	f, err := maxplus.FloydWarshall(threeCycle(t), 3)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{
		{0, -1, 0},
		{1, 0, 1},
		{0, -1, 0},
	}, f)
}

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := maxplus.FloydWarshall(nil, 0)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)

	_, err = maxplus.FloydWarshall(twoByTwo(t), math.Inf(1))
	require.ErrorIs(t, err, maxplus.ErrNaNInf)
	assert.Contains(t, err.Error(), "FloydWarshall:")
}

// ---------- closures ----------

func TestClosures_TwoByTwo(t *testing.T) {
	gamma, err := maxplus.StronglyTransitiveClosure(twoByTwo(t), 1.5)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{0, -0.5}, {0.5, 0}}, gamma)

	delta, err := maxplus.WeaklyTransitiveClosure(twoByTwo(t), 1.5)
	require.NoError(t, err)
	assert.True(t, gamma.Equal(delta, tol))
}

func TestClosures_ThreeCycle(t *testing.T) {
	want := [][]float64{{0, -1, 0}, {1, 0, 1}, {0, -1, 0}}

	gamma, err := maxplus.StronglyTransitiveClosure(threeCycle(t), 3)
	require.NoError(t, err)
	AssertMatrixEqual(t, want, gamma)

	delta, err := maxplus.WeaklyTransitiveClosure(threeCycle(t), 3)
	require.NoError(t, err)
	AssertMatrixEqual(t, want, delta)
}

func TestClosures_SingleVertex(t *testing.T) {
	a := MustMatrix(t, [][]float64{{5}})

	gamma, err := maxplus.StronglyTransitiveClosure(a, 5)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{0}}, gamma)

	delta, err := maxplus.WeaklyTransitiveClosure(a, 5)
	require.NoError(t, err)
	AssertMatrixEqual(t, [][]float64{{0}}, delta)
}

func TestClosures_Errors(t *testing.T) {
	_, err := maxplus.StronglyTransitiveClosure(nil, 0)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
	_, err = maxplus.WeaklyTransitiveClosure(twoByTwo(t), math.NaN())
	require.ErrorIs(t, err, maxplus.ErrNaNInf)
}

// ---------- definiteness ----------

func TestCheckDefinite(t *testing.T) {
	shift := func(a *maxplus.Matrix, lambda float64) *maxplus.Matrix {
		d, err := maxplus.Shift(a, lambda)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name   string
		a      *maxplus.Matrix
		lambda float64
		want   maxplus.Definiteness
	}{
		{"shifted two by two", shift(twoByTwo(t), 1.5), 0, maxplus.Definite},
		{"shifted three cycle", shift(threeCycle(t), 3), 0, maxplus.Definite},
		{"shifted self loop", shift(MustMatrix(t, [][]float64{{5}}), 5), 0, maxplus.Definite},
		{"raw input", twoByTwo(t), 1.5, maxplus.NonZeroEigenvalue},
		{"isolated vertex", shift(isolated(t), 1.5), 0, maxplus.ClosureMismatch},
		{"two self loops", MustMatrix(t, [][]float64{{-5, eps}, {eps, 0}}), 0, maxplus.ClosureMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := maxplus.CheckDefinite(tt.a, tt.lambda)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)

			ok, err := maxplus.IsDefinite(tt.a, tt.lambda)
			require.NoError(t, err)
			assert.Equal(t, tt.want == maxplus.Definite, ok)
		})
	}
}

func TestCheckDefinite_Tolerance(t *testing.T) {
	d := MustMatrix(t, [][]float64{{-1.5, -0.5}, {0.5, -1.5}})

	got, err := maxplus.CheckDefinite(d, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, maxplus.NonZeroEigenvalue, got)

	got, err = maxplus.CheckDefinite(d, 1e-6, maxplus.WithTolerance(1e-3))
	require.NoError(t, err)
	assert.Equal(t, maxplus.Definite, got)
}

func TestCheckDefinite_Errors(t *testing.T) {
	_, err := maxplus.CheckDefinite(nil, 0)
	require.ErrorIs(t, err, maxplus.ErrNilMatrix)
	_, err = maxplus.IsDefinite(twoByTwo(t), math.NaN())
	require.ErrorIs(t, err, maxplus.ErrNaNInf)
}

func TestDefiniteness_String(t *testing.T) {
	assert.Equal(t, "definite", maxplus.Definite.String())
	assert.Equal(t, "Definiteness(9)", maxplus.Definiteness(9).String())
}

func TestCriticalNodes(t *testing.T) {
	nodes, err := maxplus.CriticalNodes(twoByTwo(t), 1.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, nodes)

	nodes, err = maxplus.CriticalNodes(MustMatrix(t, [][]float64{{0, eps}, {eps, 5}}), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nodes)

	nodes, err = maxplus.CriticalNodes(isolated(t), 1.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, nodes)
}
