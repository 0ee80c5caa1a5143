// SPDX-License-Identifier: MIT

package hyperplane

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/vector"
)

// NewLine builds the 2D line a·x_1 + b·x_2 = k.
func NewLine(a, b, k decimal.Decimal, opts ...Option) Equation {
	n, _ := vector.New(a, b) // two coordinates: cannot fail
	o := gatherOptions(opts...)

	return build(n, k, o.policy)
}

// NewPlane builds the 3D plane a·x_1 + b·x_2 + c·x_3 = k.
func NewPlane(a, b, c, k decimal.Decimal, opts ...Option) Equation {
	n, _ := vector.New(a, b, c) // three coordinates: cannot fail
	o := gatherOptions(opts...)

	return build(n, k, o.policy)
}

// IntersectionKind classifies how two lines meet.
type IntersectionKind int

const (
	// Crossing lines meet in exactly one point.
	Crossing IntersectionKind = iota
	// Coincident lines are the same line.
	Coincident
	// Disjoint lines are parallel and distinct.
	Disjoint
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case Crossing:
		return "crossing"
	case Coincident:
		return "coincident"
	case Disjoint:
		return "disjoint"
	default:
		return "unknown"
	}
}

// Intersection is the result of Equation.IntersectionWith.
// Point is set only for Crossing.
type Intersection struct {
	Kind  IntersectionKind
	Point vector.Vector
}

// IntersectionWith intersects two 2D lines a1x+a2y=k1, b1x+b2y=k2 by
// Cramer's rule:
//
//	x = (b2·k1 − a2·k2)/det, y = (a1·k2 − b1·k1)/det, det = a1·b2 − a2·b1.
//
// A near-zero det means parallel lines: Coincident when Equal, else Disjoint.
// Errors: ErrNotLine when either equation is not 2D.
func (e Equation) IntersectionWith(o Equation) (Intersection, error) {
	if e.Dimension() != 2 || o.Dimension() != 2 {
		return Intersection{}, planeErrorf(opIntersection, ErrNotLine)
	}
	a := e.normal.Coordinates()
	b := o.normal.Coordinates()
	k1, k2 := e.constant, o.constant

	det := a[0].Mul(b[1]).Sub(a[1].Mul(b[0]))
	if e.policy.IsNearZero(det) {
		if e.Equal(o) {
			return Intersection{Kind: Coincident}, nil
		}

		return Intersection{Kind: Disjoint}, nil
	}
	x := e.policy.Div(b[1].Mul(k1).Sub(a[1].Mul(k2)), det)
	y := e.policy.Div(a[0].Mul(k2).Sub(b[0].Mul(k1)), det)
	pt, err := vector.New(x, y)
	if err != nil {
		return Intersection{}, planeErrorf(opIntersection, err)
	}

	return Intersection{Kind: Crossing, Point: pt}, nil
}
