// SPDX-License-Identifier: MIT

// Package spectrum runs one max-plus eigenspace analysis session end to end.
//
// Overview:
//
//   - Analyzer.Analyze computes the eigenvalue (package karp), the definite matrix,
//     the definiteness verdict, the F-W matrix, both transitive closures, the
//     fundamental vectors, the greedy independent basis and the eigenspace string.
//   - Every session gets a UUID that tags its log lines and its Report.
//
// Error kinds (all inspectable with errors.Is / errors.As):
//
//   - maxplus.ErrMalformedWeight and maxplus.ErrInvalidDimensions are raised while
//     building the input matrix, before Analyze is reached.
//   - *NotDefiniteError (ErrNotDefinite) carries the eigenvalue and the Reason.
//     A digraph without a cycle through vertex 0 is rejected with ReasonNoCycle
//     and the error also matches karp.ErrNoCycle.
package spectrum
