// SPDX-License-Identifier: MIT

// Package karp computes the max-plus eigenvalue of a square matrix with Karp's
// maximum cycle mean algorithm, in its "column principle" form.
//
// Overview:
//
//   - The eigenvalue of an irreducible max-plus matrix equals the maximum mean
//     weight over all directed cycles of its precedence digraph.
//   - Karp's trick avoids cycle enumeration: it only needs column 0 of the powers
//     A¹ … Aⁿ⁺¹ and takes max over rows of the min over path-length differences.
//
// Performance and complexity:
//
//   - Time:  O(n³), n matrix-vector products of cost O(n²).
//   - Space: O(n²) for the n+1 stored columns.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix: nil input.
//   - ErrNoCycle:   no walk of length n+1 reaches vertex 0 (acyclic from 0's point of view).
//
// Example usage:
//
//	a, _ := maxplus.NewFromFloats([][]float64{{0, 1}, {2, 0}})
//	lambda, err := karp.Eigenvalue(a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(lambda) // 1.5
package karp
