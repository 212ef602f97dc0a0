// SPDX-License-Identifier: MIT

// Package maxplus - tagged semiring weight.
//
// Purpose:
//   - Represent a max-plus scalar as either a finite float64 or the semiring zero ε (−∞).
//   - Provide the two semiring operators explicitly: ⊕ (max) and ⊗ (+).
//
// Contract:
//   - The zero value of Weight is ε, so freshly allocated matrices have no edges.
//   - ε is absorbing for ⊗ and neutral for ⊕; no threshold test ever decides "no edge".
//   - Finite payloads must be finite floats; Matrix.Set enforces this.

package maxplus

import (
	"math"
	"strconv"
)

// EpsSymbol is the rendering of the semiring zero.
const EpsSymbol = "ε"

// Weight is a max-plus scalar: a finite real or ε.
type Weight struct {
	v      float64 // payload, meaningful only when finite is true
	finite bool    // false ⇒ ε
}

// Finite wraps v as a finite weight. It does not validate v; Matrix.Set does.
func Finite(v float64) Weight { return Weight{v: v, finite: true} }

// Eps returns the semiring zero ε (additive identity, multiplicative absorber).
func Eps() Weight { return Weight{} }

// Unit returns the multiplicative identity 0.
func Unit() Weight { return Weight{v: 0, finite: true} }

// FromFloat maps −Inf to ε and any other value to Finite(v).
func FromFloat(v float64) Weight {
	if math.IsInf(v, -1) {
		return Eps()
	}

	return Finite(v)
}

// IsEps reports whether w is the semiring zero.
func (w Weight) IsEps() bool { return !w.finite }

// Value returns the finite payload and true, or (0, false) for ε.
func (w Weight) Value() (float64, bool) {
	if !w.finite {
		return 0, false
	}

	return w.v, true
}

// Float returns the payload, or −Inf for ε.
func (w Weight) Float() float64 {
	if !w.finite {
		return math.Inf(-1)
	}

	return w.v
}

// Oplus is the semiring addition: max(w, o). ε is neutral.
func (w Weight) Oplus(o Weight) Weight {
	if !w.finite {
		return o
	}
	if !o.finite {
		return w
	}
	if o.v > w.v {
		return o
	}

	return w
}

// Otimes is the semiring multiplication: w + o. ε is absorbing.
func (w Weight) Otimes(o Weight) Weight {
	if !w.finite || !o.finite {
		return Eps()
	}

	return Finite(w.v + o.v)
}

// Shift subtracts the ordinary real λ from a finite weight; ε stays ε.
// This is plain subtraction, not a semiring operation.
func (w Weight) Shift(lambda float64) Weight {
	if !w.finite {
		return w
	}

	return Finite(w.v - lambda)
}

// Less orders weights with ε below every finite value.
func (w Weight) Less(o Weight) bool {
	if !o.finite {
		return false
	}
	if !w.finite {
		return true
	}

	return w.v < o.v
}

// Equal reports whether both weights are ε, or both are finite within tol.
func (w Weight) Equal(o Weight, tol float64) bool {
	if w.finite != o.finite {
		return false
	}
	if !w.finite {
		return true
	}

	return math.Abs(w.v-o.v) <= tol
}

// IsZero reports whether w is the finite value 0 within tol
// (the multiplicative identity, used on closure diagonals).
func (w Weight) IsZero(tol float64) bool {
	return w.finite && math.Abs(w.v) <= tol
}

// Format renders w with prec significant digits ('g' verb); prec < 0 means shortest exact.
func (w Weight) Format(prec int) string {
	if !w.finite {
		return EpsSymbol
	}
	if w.v == 0 {
		// avoid "-0" after shifting
		return "0"
	}

	return strconv.FormatFloat(w.v, 'g', prec, 64)
}

// String renders w in its shortest exact form, ε for the semiring zero.
func (w Weight) String() string { return w.Format(DefaultPrecision) }
