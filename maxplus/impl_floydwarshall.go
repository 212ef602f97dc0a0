// SPDX-License-Identifier: MIT
// Package: maxplus
//
// Purpose:
//   - Max-plus Floyd–Warshall ("F-W matrix") over the definite matrix, with a
//     deterministic loop order.
//
// Contract:
//   - Relaxation is max, not min: after normalization by λ every cycle weighs ≤ 0,
//     so the best walks are bounded and the closure is well defined.
//   - Row and column of the pivot vertex i are left untouched during pass i.

package maxplus

// floydWarshallMaxInPlace runs the max-relaxation closure on d in-place.
//
// Invariant:
//   - After pass i, d[k][j] holds the best max-plus walk weight from k to j
//     that routes only through intermediates ≤ i (plus the original edge).
//
// Loop order is fixed (i → k → j). Time: O(n³); Extra space: O(1).
func floydWarshallMaxInPlace(d *Matrix) {
	n := d.n
	data := d.data

	var (
		i, k, j      int
		baseI, baseK int
		ki, cand     Weight
	)
	for i = 0; i < n; i++ { // pivot (intermediate vertex)
		baseI = i * n
		for k = 0; k < n; k++ { // source
			if k == i {
				continue // row i stays as is during its own pass
			}
			baseK = k * n
			ki = data[baseK+i]
			if ki.IsEps() {
				continue // k cannot reach i, nothing to relax
			}
			for j = 0; j < n; j++ { // destination
				if j == i {
					continue // column i stays as is during its own pass
				}
				cand = ki.Otimes(data[baseI+j])
				data[baseK+j] = data[baseK+j].Oplus(cand)
			}
		}
	}
}

// FloydWarshall returns the max-plus F-W matrix of D = Shift(A, λ).
//
// Implementation:
//   - Stage 1: validate A and λ.
//   - Stage 2: materialize D (A is never mutated).
//   - Stage 3: relax F[k][j] = max(F[k][j], F[k][i] + F[i][j]) for every pivot i, k≠i, j≠i.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite λ.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Pass the eigenvalue returned by karp; with any smaller λ a positive cycle
//     makes the result depend on loop order instead of being a closure.
func FloydWarshall(a *Matrix, lambda float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, maxplusErrorf(opFloydWarshall, err)
	}
	if err := validateLambda(lambda); err != nil {
		return nil, maxplusErrorf(opFloydWarshall, err)
	}

	d := shiftInto(a, lambda)
	floydWarshallMaxInPlace(d)

	return d, nil
}
