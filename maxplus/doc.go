// Package maxplus implements matrix algebra over the max-plus (tropical) semiring.
//
// Overview:
//
//   - Scalars are tagged Weight values: a finite float64 or ε (−∞). ⊕ is max, ⊗ is +;
//     ε is the additive identity, 0 the multiplicative identity.
//   - Matrix is a square n×n row-major buffer, 1 ≤ n ≤ MaxDimension (7).
//   - Kernels: Mul, Power, MatVec, Shift (the definite matrix A − λ), FloydWarshall
//     (max relaxation), StronglyTransitiveClosure Γ, WeaklyTransitiveClosure Δ.
//   - Eigenspace tooling: CheckDefinite / IsDefinite, CriticalNodes, FundamentalVectors,
//     Independent, IndependentSubset and FormatEigenspace.
//   - Precedence digraph helpers: Edges, Components, IsIrreducible.
//
// The eigenvalue itself is computed by package karp and is passed explicitly to
// every operation that depends on it; a Matrix never caches λ.
//
// Conventions:
//
//   - Fundamental vectors are closure columns whose diagonal entry is 0.
//   - Vectors of length ≤ 1 are never independent of each other.
//   - Floyd–Warshall relaxes with max.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix,
//     ErrNaNInf, ErrMalformedWeight, ErrBadExponent, ErrTooManyVectors, ErrEmptyBasis.
//
// Example usage:
//
//	a, _ := maxplus.NewFromFloats([][]float64{{0, 1}, {2, 0}})
//	gamma, _ := maxplus.StronglyTransitiveClosure(a, 1.5)
//	fmt.Print(gamma) // [0, -0.5]\n[0.5, 0]\n
package maxplus
