// SPDX-License-Identifier: MIT
// Package: maxplus
//
// Purpose:
//   - Precedence digraph of a matrix: an arc i→j for every finite A[i][j].
//   - Strongly connected components (Tarjan) and the irreducibility check.
//
// Determinism:
//   - Vertices are visited in ascending order; each component is sorted ascending
//     and components are ordered by their smallest vertex.

package maxplus

import "slices"

// Edge is one arc of the precedence digraph.
type Edge struct {
	From, To int
	Weight   float64
}

// Edges lists the arcs of A in row-major order. A nil matrix has no arcs.
func Edges(a *Matrix) []Edge {
	if a == nil {
		return nil
	}
	var out []Edge
	a.Do(func(i, j int, w Weight) bool {
		if v, ok := w.Value(); ok {
			out = append(out, Edge{From: i, To: j, Weight: v})
		}
		return true
	})

	return out
}

// tarjan holds the state of one SCC run over a dense adjacency.
type tarjan struct {
	a       *Matrix
	index   int
	indices []int
	lowlink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	n := t.a.n
	for w := 0; w < n; w++ {
		if t.a.data[v*n+w].IsEps() {
			continue
		}
		if t.indices[w] == -1 {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.indices[w])
		}
	}

	if t.lowlink[v] == t.indices[v] {
		var scc []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		slices.Sort(scc)
		t.sccs = append(t.sccs, scc)
	}
}

// Components returns the strongly connected components of the precedence digraph.
//
// Complexity:
//   - Time O(n²) on the dense adjacency, Space O(n).
func Components(a *Matrix) ([][]int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}

	n := a.n
	t := &tarjan{
		a:       a,
		indices: make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range t.indices {
		t.indices[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.indices[v] == -1 {
			t.strongConnect(v)
		}
	}
	slices.SortFunc(t.sccs, func(x, y []int) int { return x[0] - y[0] })

	return t.sccs, nil
}

// IsIrreducible reports whether the precedence digraph is strongly connected.
// A 1×1 matrix is irreducible by convention.
func IsIrreducible(a *Matrix) (bool, error) {
	sccs, err := Components(a)
	if err != nil {
		return false, err
	}

	return len(sccs) == 1, nil
}
