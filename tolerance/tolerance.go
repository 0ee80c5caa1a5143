// SPDX-License-Identifier: MIT

// Package tolerance - numeric policy shared by vector, hyperplane and linsys.
//
// Purpose:
//   - Provide the single near-zero test used for every pivot, zero-row and
//     zero-normal decision.
//   - Carry the division precision explicitly instead of a global decimal
//     context: every reduction receives its Policy from its caller.
//
// AI-Hints:
//   - Compare against zero only through Policy.IsNearZero; exact comparisons
//     on rounded quotients (e.g. 1/3*3) spuriously fail.
//   - Pass one Policy through a whole computation so all stages agree.
package tolerance

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the near-zero threshold: |x| < DefaultEpsilon ⇒ zero.
	DefaultEpsilon = 1e-10

	// DefaultPrecision is the number of decimal places kept by Policy.Div.
	DefaultPrecision int32 = 30
)

// ErrInvalidPolicy is returned when a Policy carries a non-positive epsilon
// or precision.
var ErrInvalidPolicy = errors.New("tolerance: invalid numeric policy")

// Policy is the explicit numeric configuration of a computation.
// The zero value is not valid; start from DefaultPolicy.
type Policy struct {
	Epsilon   decimal.Decimal // > 0
	Precision int32           // > 0, decimal places kept by Div
}

// DefaultPolicy returns the documented defaults.
// Complexity: O(1).
func DefaultPolicy() Policy {
	return Policy{
		Epsilon:   decimal.NewFromFloat(DefaultEpsilon),
		Precision: DefaultPrecision,
	}
}

// NewPolicy builds a validated Policy from a float epsilon and a precision.
// Errors: ErrInvalidPolicy when eps is not finite and positive or precision < 1.
func NewPolicy(eps float64, precision int32) (Policy, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return Policy{}, fmt.Errorf("NewPolicy: epsilon %v: %w", eps, ErrInvalidPolicy)
	}
	p := Policy{Epsilon: decimal.NewFromFloat(eps), Precision: precision}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate reports whether p is usable.
// Errors: ErrInvalidPolicy.
func (p Policy) Validate() error {
	if !p.Epsilon.IsPositive() {
		return fmt.Errorf("Validate: epsilon %s: %w", p.Epsilon, ErrInvalidPolicy)
	}
	if p.Precision < 1 {
		return fmt.Errorf("Validate: precision %d: %w", p.Precision, ErrInvalidPolicy)
	}

	return nil
}

// IsNearZero reports |x| < p.Epsilon.
func (p Policy) IsNearZero(x decimal.Decimal) bool {
	return IsNearZero(x, p.Epsilon)
}

// Div returns a/b rounded to p.Precision decimal places.
// The caller guarantees b is not near zero.
func (p Policy) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, p.Precision)
}

// IsNearZero reports whether |x| < eps.
// Complexity: O(1).
func IsNearZero(x, eps decimal.Decimal) bool {
	return x.Abs().LessThan(eps)
}

// IsNearZeroFloat is the float64 counterpart used for magnitudes and cosines,
// which are computed in floating point.
func IsNearZeroFloat(x, eps float64) bool {
	return math.Abs(x) < eps
}
