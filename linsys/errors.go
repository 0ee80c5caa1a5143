// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// NoSolution and Infinite are classification results, never errors.

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem is returned when a system is built from no equations.
	ErrEmptySystem = errors.New("linsys: system must contain at least one equation")

	// ErrDimensionMismatch indicates an equation whose dimension differs from
	// the system's fixed dimension (construction or row replacement).
	ErrDimensionMismatch = errors.New("linsys: all equations must live in the same dimension")

	// ErrZeroDimension is returned when the equations have no coefficients.
	ErrZeroDimension = errors.New("linsys: equations must have at least one coefficient")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("linsys: row index out of range")

	// ErrParameterCount is returned by Parametrization.Point when the number
	// of parameters differs from the number of free variables.
	ErrParameterCount = errors.New("linsys: wrong number of parameters")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opRow       = "Row"
	opSetRow    = "SetRow"
	opSwap      = "SwapRows"
	opMultiply  = "MultiplyCoefficientAndRow"
	opAddMulti  = "AddMultipleTimesRowToRow"
	opSolve     = "Solve"
	opParamEval = "Point"
)

// linsysErrorf wraps err with an operation tag, preserving it for errors.Is.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
