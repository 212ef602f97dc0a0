// Package maxplus is the module overview of the max-plus eigenspace engine:
// eigenvalues, transitive closures and eigenvector bases of square matrices
// over the (max, +) semiring.
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit that brings together:
//		• Semiring arithmetic: tagged ε weights, ⊕ = max, ⊗ = +, powers, shifts
//		• Eigenvalue: Karp's maximum cycle mean ("column principle")
//		• Closures: max-relaxation Floyd–Warshall, Γ(D) and Δ(D)
//		• Definiteness test, critical vertices, strongly connected components
//		• Fundamental vectors, greedy independent basis, V(A) formatting
//		• A CLI with TOML input, an interactive grid editor and Graphviz export
//
// Under the hood:
//
//	maxplus/           Weight, Matrix, kernels, closures, vectors, formatting
//	karp/              eigenvalue solver
//	spectrum/          one analysis session end to end (Analyzer, Report)
//	internal/config    MAXPLUS_* environment settings
//	internal/input     TOML matrix files and --row flags
//	internal/render    precedence digraph as DOT/SVG/PNG
//	internal/cli       cobra commands and terminal UI
//	cmd/maxplus        the binary
//	examples/          runnable scenarios
//
// Quick example:
//
//	A = [0 1]   λ = 1.5   D = A − λ = [-1.5 -0.5]   Δ(D) = [0   -0.5]
//	    [2 0]                           [ 0.5 -1.5]          [0.5  0  ]
//
//	V(A) = { α⊗Δ1 , α ∈ ℝ* }
//
//	go install github.com/katalvlaran/maxplus/cmd/maxplus@latest
//	maxplus analyze --row "0 1" --row "2 0"
package maxplus
