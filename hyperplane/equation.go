// SPDX-License-Identifier: MIT

// Package hyperplane - immutable hyperplane equations normal·x = constant.
//
// Purpose:
//   - Model one linear equation as a value: a normal vector, a constant term
//     and the derived base point (a representative point on the hyperplane).
//   - Offer the predicates the linear-system engine relies on: first nonzero
//     coefficient, parallelism, coincidence (Equal), zero/inconsistent rows.
//   - Provide the row-operation builders (Scale, AddScaled) that return NEW
//     equations; nothing here mutates a receiver.
//
// AI-Hints:
//   - Line (2D) and Plane (3D) are plain constructors over the same Equation;
//     the engine itself is dimension-generic.
//   - Treat ErrNoNonzeroElements as "this row has no pivot".
package hyperplane

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/internal/render"
	"github.com/katalvlaran/linsolve/tolerance"
	"github.com/katalvlaran/linsolve/vector"
)

// Equation is the hyperplane normal·x = constant in Dimension() dimensions.
// Values are immutable; copy freely.
type Equation struct {
	normal    vector.Vector
	constant  decimal.Decimal
	basePoint vector.Vector // valid only when hasBase
	hasBase   bool
	policy    tolerance.Policy
}

var _ fmt.Stringer = Equation{}

// New builds an equation and computes its base point.
// Errors: ErrInvalidNormal when normal has no coordinates.
// Complexity: O(d).
func New(normal vector.Vector, constant decimal.Decimal, opts ...Option) (Equation, error) {
	if normal.Dim() == 0 {
		return Equation{}, planeErrorf(opNew, ErrInvalidNormal)
	}
	o := gatherOptions(opts...)

	return build(normal, constant, o.policy), nil
}

// Zero returns 0·x = 0 in dim dimensions (the default-constructed equation).
// Errors: ErrInvalidNormal when dim < 1.
func Zero(dim int, opts ...Option) (Equation, error) {
	n, err := vector.Zero(dim)
	if err != nil {
		return Equation{}, planeErrorf(opNew, ErrInvalidNormal)
	}

	return New(n, decimal.Zero, opts...)
}

// FromStrings parses normal coefficients and the constant term.
// Errors: ErrInvalidNormal, vector.ErrInvalidCoordinate.
func FromStrings(normal []string, constant string, opts ...Option) (Equation, error) {
	if len(normal) == 0 {
		return Equation{}, planeErrorf(opFromStrings, ErrInvalidNormal)
	}
	n, err := vector.FromStrings(normal...)
	if err != nil {
		return Equation{}, planeErrorf(opFromStrings, err)
	}
	k, err := decimal.NewFromString(constant)
	if err != nil {
		return Equation{}, planeErrorf(opFromStrings, fmt.Errorf("constant %q: %w", constant, vector.ErrInvalidCoordinate))
	}

	return New(n, k, opts...)
}

// build is the single place where the base point is derived.
func build(normal vector.Vector, constant decimal.Decimal, p tolerance.Policy) Equation {
	e := Equation{normal: normal, constant: constant, policy: p}

	coords := normal.Coordinates()
	idx, err := FirstNonzeroIndex(coords, p.Epsilon)
	if err != nil {
		// zero normal: no base point
		return e
	}
	bp, err := vector.Basis(normal.Dim(), idx, p.Div(constant, coords[idx]))
	if err != nil {
		return e
	}
	e.basePoint, e.hasBase = bp, true

	return e
}

// FirstNonzeroIndex scans coords left to right and returns the index of the
// first coordinate with |c| ≥ eps.
// Errors: ErrNoNonzeroElements when every coordinate is near zero.
func FirstNonzeroIndex(coords []decimal.Decimal, eps decimal.Decimal) (int, error) {
	for k, c := range coords {
		if !tolerance.IsNearZero(c, eps) {
			return k, nil
		}
	}

	return -1, ErrNoNonzeroElements
}

// Dimension returns the dimension of the normal vector.
func (e Equation) Dimension() int { return e.normal.Dim() }

// Normal returns the normal vector.
func (e Equation) Normal() vector.Vector { return e.normal }

// Constant returns the constant term.
func (e Equation) Constant() decimal.Decimal { return e.constant }

// Policy returns the numeric policy the equation was built with.
func (e Equation) Policy() tolerance.Policy { return e.policy }

// BasePoint returns a point on the hyperplane; ok is false for a zero normal.
func (e Equation) BasePoint() (vector.Vector, bool) { return e.basePoint, e.hasBase }

// Coefficient returns normal coordinate i.
// Errors: ErrOutOfRange.
func (e Equation) Coefficient(i int) (decimal.Decimal, error) {
	c, err := e.normal.At(i)
	if err != nil {
		return decimal.Zero, planeErrorf(opCoefficient, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return c, nil
}

// FirstNonzeroIndex returns the pivot column of this equation.
// Errors: ErrNoNonzeroElements for a zero normal.
func (e Equation) FirstNonzeroIndex() (int, error) {
	return FirstNonzeroIndex(e.normal.Coordinates(), e.policy.Epsilon)
}

// IsZero reports whether the normal vector is near zero (0 = k row).
func (e Equation) IsZero() bool { return e.normal.IsZero(e.policy) }

// IsInconsistent reports the contradiction 0 = k with k not near zero.
func (e Equation) IsInconsistent() bool {
	return e.IsZero() && !e.policy.IsNearZero(e.constant)
}

// IsParallelTo reports whether the normals are parallel. A zero normal is
// parallel to everything (explicit branch in vector.IsParallelTo).
func (e Equation) IsParallelTo(o Equation) bool {
	return e.normal.IsParallelTo(o.normal, e.policy)
}

// Equal reports whether e and o describe the same hyperplane:
//   - both zero normals with near-equal constants, or
//   - both non-zero, parallel, and the segment between base points lies in
//     the hyperplane (orthogonal to the normal).
func (e Equation) Equal(o Equation) bool {
	if e.Dimension() != o.Dimension() {
		return false
	}
	eZero, oZero := e.IsZero(), o.IsZero()
	if eZero || oZero {
		if eZero != oZero {
			return false
		}

		return e.policy.IsNearZero(e.constant.Sub(o.constant))
	}
	if !e.IsParallelTo(o) {
		return false
	}
	diff, err := e.basePoint.Minus(o.basePoint)
	if err != nil {
		return false
	}

	return e.normal.IsOrthogonalTo(diff, e.policy)
}

// Scale returns c·e (both sides multiplied by c).
func (e Equation) Scale(c decimal.Decimal) Equation {
	return build(e.normal.TimesScalar(c), e.constant.Mul(c), e.policy)
}

// DivideBy returns e/c with every quotient rounded by the policy precision.
// Dividing a coefficient by itself yields exactly 1, which is how pivots are
// normalized. The caller guarantees c is not near zero.
func (e Equation) DivideBy(c decimal.Decimal) Equation {
	coords := e.normal.Coordinates()
	for i := range coords {
		coords[i] = e.policy.Div(coords[i], c)
	}
	n, _ := vector.New(coords...) // same non-zero dimension as e.normal

	return build(n, e.policy.Div(e.constant, c), e.policy)
}

// AddScaled returns e + c·o.
// Errors: ErrDimensionMismatch.
func (e Equation) AddScaled(o Equation, c decimal.Decimal) (Equation, error) {
	if e.Dimension() != o.Dimension() {
		return Equation{}, planeErrorf(opAddScaled, ErrDimensionMismatch)
	}
	n, err := e.normal.Plus(o.normal.TimesScalar(c))
	if err != nil {
		return Equation{}, planeErrorf(opAddScaled, err)
	}

	return build(n, e.constant.Add(o.constant.Mul(c)), e.policy), nil
}

// Satisfies reports whether point x lies on the hyperplane within epsilon.
// Mismatched dimensions never satisfy.
func (e Equation) Satisfies(x vector.Vector) bool {
	lhs, err := e.normal.Dot(x)
	if err != nil {
		return false
	}

	return e.policy.IsNearZero(lhs.Sub(e.constant))
}

// String renders "a_1x_1 + a_2x_2 ... = k" with 3-decimal rounding.
// Terms that round to zero are omitted, unit coefficients are elided, the
// first rendered term has no leading "+", and a zero normal renders "0 = k".
func (e Equation) String() string {
	coords := e.normal.Coordinates()

	var terms []string
	_, err := FirstNonzeroIndex(coords, e.policy.Epsilon)
	if err == nil {
		for i, c := range coords {
			if render.IsDisplayZero(c) {
				continue
			}
			terms = append(terms, render.Coefficient(c, len(terms) == 0)+render.Variable(i))
		}
	} else if !errors.Is(err, ErrNoNonzeroElements) {
		return err.Error()
	}

	lhs := strings.Join(terms, " ")
	if lhs == "" {
		lhs = "0"
	}

	return lhs + " = " + render.Number(e.constant)
}
