// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All functions return these sentinels (optionally wrapped with an operation
// tag via vectorErrorf); tests and callers match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a vector is built from an empty
	// coordinate sequence (or a non-positive dimension is requested).
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrDimensionMismatch indicates operands of different dimensions, or an
	// operation defined only for a specific dimension (Cross needs 3).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDegenerateVector signals an operation that needs a direction
	// (normalize, angle, projection) applied to a zero-magnitude vector.
	ErrDegenerateVector = errors.New("vector: zero-magnitude vector")

	// ErrOutOfRange indicates a coordinate index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidCoordinate is returned when a coordinate cannot be parsed or
	// is NaN/Inf.
	ErrInvalidCoordinate = errors.New("vector: invalid coordinate")
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opFromString = "FromStrings"
	opFromFloat  = "FromFloats"
	opZero       = "Zero"
	opAt         = "At"
	opPlus       = "Plus"
	opMinus      = "Minus"
	opDot        = "Dot"
	opCross      = "Cross"
	opNormalized = "Normalized"
	opAngle      = "AngleWith"
	opProject    = "ComponentParallelTo"
	opReject     = "ComponentOrthogonalTo"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
