// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/tolerance"
)

// System is an ordered sequence of hyperplane equations sharing one
// dimension. Rows are replaced wholesale, never edited in place.
//
// Reductions (TriangularForm, RREF, Solve) work on a private clone, so they
// are safe to call concurrently on a shared *System as long as nobody calls
// the mutating helpers (SetRow, SwapRows, MultiplyCoefficientAndRow,
// AddMultipleTimesRowToRow) on it at the same time.
type System struct {
	rows   []hyperplane.Equation
	dim    int
	policy tolerance.Policy
	log    *zap.Logger
}

var _ fmt.Stringer = (*System)(nil)

// New builds a system from eqs. Every row adopts the system's numeric policy
// (WithEpsilon / WithPrecision); the caller's slice is copied.
// Errors: ErrEmptySystem, ErrZeroDimension, ErrDimensionMismatch.
// Complexity: O(m·d).
func New(eqs []hyperplane.Equation, opts ...Option) (*System, error) {
	if len(eqs) == 0 {
		return nil, linsysErrorf(opNew, ErrEmptySystem)
	}
	if eqs[0].Dimension() < 1 {
		return nil, linsysErrorf(opNew, ErrZeroDimension)
	}
	o := gatherOptions(opts...)
	s := &System{
		rows:   make([]hyperplane.Equation, len(eqs)),
		dim:    eqs[0].Dimension(),
		policy: o.policy(),
		log:    o.logger,
	}
	for i, e := range eqs {
		if e.Dimension() != s.dim {
			return nil, linsysErrorf(opNew, fmt.Errorf("equation %d has dimension %d, want %d: %w",
				i, e.Dimension(), s.dim, ErrDimensionMismatch))
		}
		r, err := s.adopt(e)
		if err != nil {
			return nil, linsysErrorf(opNew, err)
		}
		s.rows[i] = r
	}

	return s, nil
}

// adopt rebinds e to the system policy.
func (s *System) adopt(e hyperplane.Equation) (hyperplane.Equation, error) {
	return hyperplane.New(e.Normal(), e.Constant(), hyperplane.WithPolicy(s.policy))
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.rows) }

// Dimension returns the shared dimension of all equations.
func (s *System) Dimension() int { return s.dim }

// Policy returns the numeric policy of the system.
func (s *System) Policy() tolerance.Policy { return s.policy }

// Row returns equation i.
// Errors: ErrOutOfRange.
func (s *System) Row(i int) (hyperplane.Equation, error) {
	if err := s.checkRow(opRow, i); err != nil {
		return hyperplane.Equation{}, err
	}

	return s.rows[i], nil
}

// Rows returns a copy of the equations.
func (s *System) Rows() []hyperplane.Equation {
	out := make([]hyperplane.Equation, len(s.rows))
	copy(out, s.rows)

	return out
}

// SetRow replaces row i with e after re-validating its dimension.
// Errors: ErrOutOfRange, ErrDimensionMismatch.
func (s *System) SetRow(i int, e hyperplane.Equation) error {
	if err := s.checkRow(opSetRow, i); err != nil {
		return err
	}
	if e.Dimension() != s.dim {
		return linsysErrorf(opSetRow, fmt.Errorf("row %d: dimension %d, want %d: %w",
			i, e.Dimension(), s.dim, ErrDimensionMismatch))
	}
	r, err := s.adopt(e)
	if err != nil {
		return linsysErrorf(opSetRow, err)
	}
	s.rows[i] = r

	return nil
}

// Clone returns an independent copy. Equations are immutable values, so
// copying the row slice is a deep copy.
func (s *System) Clone() *System {
	return &System{
		rows:   s.Rows(),
		dim:    s.dim,
		policy: s.policy,
		log:    s.log,
	}
}

// SwapRows exchanges rows i and j of the receiver.
// Errors: ErrOutOfRange.
func (s *System) SwapRows(i, j int) error {
	if err := s.checkRow(opSwap, i); err != nil {
		return err
	}
	if err := s.checkRow(opSwap, j); err != nil {
		return err
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]

	return nil
}

// MultiplyCoefficientAndRow replaces row with c·row.
// Errors: ErrOutOfRange.
func (s *System) MultiplyCoefficientAndRow(c decimal.Decimal, row int) error {
	if err := s.checkRow(opMultiply, row); err != nil {
		return err
	}
	s.rows[row] = s.rows[row].Scale(c)

	return nil
}

// AddMultipleTimesRowToRow replaces rowTo with rowTo + c·rowFrom.
// Errors: ErrOutOfRange.
func (s *System) AddMultipleTimesRowToRow(c decimal.Decimal, rowFrom, rowTo int) error {
	if err := s.checkRow(opAddMulti, rowFrom); err != nil {
		return err
	}
	if err := s.checkRow(opAddMulti, rowTo); err != nil {
		return err
	}
	r, err := s.rows[rowTo].AddScaled(s.rows[rowFrom], c)
	if err != nil {
		return linsysErrorf(opAddMulti, err)
	}
	s.rows[rowTo] = r

	return nil
}

func (s *System) checkRow(tag string, i int) error {
	if i < 0 || i >= len(s.rows) {
		return linsysErrorf(tag, fmt.Errorf("row %d of %d: %w", i, len(s.rows), ErrOutOfRange))
	}

	return nil
}

// String renders
//
//	Linear System:
//	Equation 1: x_1 + x_2 = 1
//	Equation 2: x_2 = 2
func (s *System) String() string {
	var b strings.Builder
	b.WriteString("Linear System:")
	for i, r := range s.rows {
		fmt.Fprintf(&b, "\nEquation %d: %s", i+1, r)
	}

	return b.String()
}
