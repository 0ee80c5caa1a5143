// SPDX-License-Identifier: MIT
// Package hyperplane: sentinel error set.
// ErrNoNonzeroElements is a control-flow signal, not a failure: every caller
// inside this module handles it locally (base point, display, pivot lookup)
// by matching it with errors.Is.

package hyperplane

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNonzeroElements is returned by FirstNonzeroIndex when every
	// coordinate is near zero.
	ErrNoNonzeroElements = errors.New("hyperplane: no nonzero elements found")

	// ErrDimensionMismatch indicates two equations (or an equation and a
	// vector) of different dimensions.
	ErrDimensionMismatch = errors.New("hyperplane: dimension mismatch")

	// ErrInvalidNormal is returned when the normal vector has no coordinates.
	ErrInvalidNormal = errors.New("hyperplane: normal vector must have dimension > 0")

	// ErrNotLine is returned by IntersectionWith for non-2D equations.
	ErrNotLine = errors.New("hyperplane: intersection is defined for 2D lines only")

	// ErrOutOfRange indicates a coefficient index outside [0, Dimension()).
	ErrOutOfRange = errors.New("hyperplane: index out of range")
)

const (
	opNew          = "New"
	opFromStrings  = "FromStrings"
	opAddScaled    = "AddScaled"
	opCoefficient  = "Coefficient"
	opIntersection = "IntersectionWith"
)

// planeErrorf wraps err with an operation tag, preserving it for errors.Is.
func planeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
