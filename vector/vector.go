// SPDX-License-Identifier: MIT

// Package vector - immutable fixed-length vectors of exact decimals.
//
// Purpose:
//   - Provide the arithmetic primitives consumed by hyperplane and linsys:
//     sums, scalar multiples, dot/cross products, magnitude, angle,
//     parallel/orthogonal predicates and decompositions.
//   - Keep values immutable: every operation returns a fresh Vector, and
//     accessors hand out copies of the backing slice.
//
// Numeric notes:
//   - Coordinates are github.com/shopspring/decimal values, so sums and
//     products are exact; only division (Policy.Div) and square roots
//     (Magnitude, AngleWith) round.
//   - Zero tests go through a tolerance.Policy; the zero vector is parallel
//     and orthogonal to every vector by explicit branch.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Vector is an ordered, fixed-length sequence of decimals (Dim() ≥ 1).
// The zero value has dimension 0 and is only produced by failed constructors.
type Vector struct {
	coords []decimal.Decimal
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New builds a vector from the given coordinates; the slice is copied.
// Errors: ErrInvalidDimension when no coordinates are given.
// Complexity: O(n).
func New(coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrInvalidDimension)
	}
	buf := make([]decimal.Decimal, len(coords))
	copy(buf, coords)

	return Vector{coords: buf}, nil
}

// FromStrings parses each coordinate with decimal.NewFromString.
// Errors: ErrInvalidDimension, ErrInvalidCoordinate.
func FromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opFromString, ErrInvalidDimension)
	}
	buf := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Vector{}, vectorErrorf(opFromString, fmt.Errorf("coordinate %d %q: %w", i, s, ErrInvalidCoordinate))
		}
		buf[i] = d
	}

	return Vector{coords: buf}, nil
}

// FromFloats converts float64 coordinates using their shortest decimal form,
// so 0.1 becomes exactly 0.1.
// Errors: ErrInvalidDimension, ErrInvalidCoordinate (NaN/Inf).
func FromFloats(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opFromFloat, ErrInvalidDimension)
	}
	buf := make([]decimal.Decimal, len(coords))
	for i, f := range coords {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Vector{}, vectorErrorf(opFromFloat, fmt.Errorf("coordinate %d: %w", i, ErrInvalidCoordinate))
		}
		buf[i] = decimal.NewFromFloat(f)
	}

	return Vector{coords: buf}, nil
}

// Zero returns the zero vector of dimension dim.
// Errors: ErrInvalidDimension when dim < 1.
func Zero(dim int) (Vector, error) {
	if dim < 1 {
		return Vector{}, vectorErrorf(opZero, ErrInvalidDimension)
	}
	buf := make([]decimal.Decimal, dim)
	for i := range buf {
		buf[i] = decimal.Zero
	}

	return Vector{coords: buf}, nil
}

// Basis returns the i-th standard basis vector e_i of dimension dim scaled by c.
// Errors: ErrInvalidDimension, ErrOutOfRange.
func Basis(dim, i int, c decimal.Decimal) (Vector, error) {
	v, err := Zero(dim)
	if err != nil {
		return Vector{}, err
	}
	if i < 0 || i >= dim {
		return Vector{}, vectorErrorf(opZero, ErrOutOfRange)
	}
	v.coords[i] = c

	return v, nil
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v.coords) }

// At returns coordinate i.
// Errors: ErrOutOfRange.
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Zero, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.coords), ErrOutOfRange))
	}

	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coords))
	copy(out, v.coords)

	return out
}

// Floats returns the coordinates as float64 (inexact).
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c.InexactFloat64()
	}

	return out
}

// Equal reports whether v and w have the same dimension and identical
// coordinates (numeric equality, so 1.0 == 1).
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders "Vector(c1, c2, ...)".
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = c.String()
	}

	return "Vector(" + strings.Join(parts, ", ") + ")"
}
