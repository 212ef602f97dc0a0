// SPDX-License-Identifier: MIT

// Package maxplus: functional configuration for numeric comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package maxplus

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance used when comparing finite weights:
	// definiteness (λ == 0, Δ == Γ), fundamental diagonals (== 0) and the
	// independence predicate (d1[k] − d2[k] == c).
	DefaultTolerance = 1e-9

	// DefaultPrecision is the number of digits used by String (-1 = shortest exact form).
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const panicToleranceInvalid = "maxplus: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the absolute tolerance for finite weight comparisons.
// Panics when tol is negative, NaN or ±Inf.
//
// AI-Hints:
//   - Use 0 for bit-exact comparisons on inputs made of binary fractions (0.5, 0.25, ...).
//   - Inputs such as 1/3 produce rounding in Karp's divisions; keep the default there.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// Tolerance reports the resolved comparison tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{tol: DefaultTolerance}
}

// gatherOptions applies opts over the defaults in order (last write wins).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ResolveOptions exposes gatherOptions to orchestration layers that need the
// effective tolerance (e.g. to report it) without duplicating defaults.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
