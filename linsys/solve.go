// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/vector"
)

// Kind classifies the solution set of a system. The zero Kind is not a
// classification; it reads "unknown".
type Kind int

const (
	// Unique: exactly one point satisfies every equation.
	Unique Kind = iota + 1
	// NoSolution: the reduced system contains a contradiction 0 = k, k ≠ 0.
	NoSolution
	// Infinite: at least one free variable; the solutions form an affine
	// subspace described by a Parametrization.
	Infinite
)

// String returns "unique", "no solution" or "infinite".
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case NoSolution:
		return "no solution"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Solution is the outcome of Solve.
//
//   - Point is set only for Unique.
//   - Parametrization is set only for Infinite.
//   - RREF is the reduced system the classification was read from.
type Solution struct {
	Kind            Kind
	Point           vector.Vector
	Parametrization *Parametrization
	RREF            *System
}

// String renders the outcome the way a reader expects to see it:
// the point, "no solution", or the parametrization.
func (s Solution) String() string {
	switch s.Kind {
	case Unique:
		return s.Point.String()
	case Infinite:
		if s.Parametrization != nil {
			return s.Parametrization.String()
		}
	}

	return s.Kind.String()
}

// Solve reduces a copy of the system to RREF and classifies it.
//
// Implementation:
//   - Stage 1: RREF.
//   - Stage 2: any 0 = k row with k not near zero gives NoSolution.
//   - Stage 3: columns without a pivot row are free variables; if any
//     exist the result is Infinite with a Parametrization.
//   - Stage 4: otherwise Unique, coordinate j read from the constant of the
//     row whose pivot is column j.
//
// NoSolution and Infinite are results; the returned error is reserved for
// internal construction failures.
func (s *System) Solve() (Solution, error) {
	r := s.RREF()
	out := Solution{RREF: r}

	for i, row := range r.rows {
		if row.IsInconsistent() {
			out.Kind = NoSolution
			s.log.Debug("classified",
				zap.Stringer("kind", out.Kind),
				zap.Int("row", i),
				zap.String("equation", row.String()))

			return out, nil
		}
	}

	pivotRow, free := r.pivotLayout()
	if len(free) > 0 {
		p, err := r.parametrize(pivotRow, free)
		if err != nil {
			return Solution{}, linsysErrorf(opSolve, err)
		}
		out.Kind = Infinite
		out.Parametrization = p
		s.log.Debug("classified",
			zap.Stringer("kind", out.Kind),
			zap.Int("pivots", r.dim-len(free)),
			zap.Ints("free", free))

		return out, nil
	}

	coords := make([]decimal.Decimal, r.dim)
	for j, i := range pivotRow {
		coords[j] = r.rows[i].Constant()
	}
	pt, err := vector.New(coords...)
	if err != nil {
		return Solution{}, linsysErrorf(opSolve, err)
	}
	out.Kind = Unique
	out.Point = pt
	s.log.Debug("classified", zap.Stringer("kind", out.Kind), zap.Int("pivots", r.dim))

	return out, nil
}

// pivotLayout maps every column to its pivot row (-1 when none) and lists
// the free columns in ascending order. The receiver must be in RREF.
func (s *System) pivotLayout() (pivotRow []int, free []int) {
	pivotRow = make([]int, s.dim)
	for j := range pivotRow {
		pivotRow[j] = -1
	}
	for i, j := range s.PivotIndices() {
		if j >= 0 && pivotRow[j] < 0 {
			pivotRow[j] = i
		}
	}
	for j, i := range pivotRow {
		if i < 0 {
			free = append(free, j)
		}
	}

	return pivotRow, free
}
