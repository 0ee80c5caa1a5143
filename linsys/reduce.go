// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TriangularForm returns a new system in row-echelon form; the receiver is
// left untouched.
//
// Implementation:
//   - Stage 1: walk columns c = 0..d-1 with a pivot row r starting at 0.
//   - Stage 2: if row r has no usable coefficient at c, swap in the first row
//     below it that has one; if none exists, c is pivotless and r stays put.
//   - Stage 3: clear column c in every row below r, then advance r.
//
// Elimination replaces row j with (p·row_j - f·row_r)/p, where p is the pivot
// and f the entry of row j in column c. The numerator is exact, so a row that
// depends on the rows above becomes exactly 0 = 0, and each quotient rounds by
// at most half a unit in the last of Precision places whatever the size of the
// coefficients. Pivot rows are never rescaled here.
//
// Complexity: O(min(m,d)·m·d) decimal operations.
func (s *System) TriangularForm() *System {
	t := s.Clone()
	m, d := t.Len(), t.Dimension()

	r := 0
	for c := 0; c < d && r < m; c++ {
		if !t.ensurePivot(r, c) {
			t.log.Debug("no pivot in column", zap.Int("column", c), zap.Int("row", r))
			continue
		}
		pivot := t.coef(r, c)
		for j := r + 1; j < m; j++ {
			f := t.coef(j, c)
			if t.policy.IsNearZero(f) {
				continue
			}
			t.eliminate(pivot, f, r, j)
		}
		r++
	}

	return t
}

// ensurePivot makes rows[r] carry a usable coefficient at column c, swapping
// with a lower row when needed. It reports false when no row r..m-1 has one.
func (s *System) ensurePivot(r, c int) bool {
	if !s.policy.IsNearZero(s.coef(r, c)) {
		return true
	}
	for j := r + 1; j < len(s.rows); j++ {
		if !s.policy.IsNearZero(s.coef(j, c)) {
			_ = s.SwapRows(r, j)
			s.log.Debug("swap rows", zap.Int("column", c), zap.Int("row", r), zap.Int("with", j))

			return true
		}
	}

	return false
}

// RREF returns a new system in reduced row-echelon form: every pivot equals
// exactly 1 and is the only nonzero entry of its column. The receiver is left
// untouched.
//
// Implementation:
//   - Stage 1: TriangularForm.
//   - Stage 2: divide each pivot row by its pivot (hyperplane.Equation.DivideBy
//     turns the pivot into an exact 1).
//   - Stage 3: bottom-up, clear the pivot column in every row above.
//
// Complexity: O(m²·d) on top of TriangularForm.
func (s *System) RREF() *System {
	t := s.TriangularForm()

	for i, row := range t.rows {
		j, err := row.FirstNonzeroIndex()
		if err != nil {
			continue // zero row
		}
		t.rows[i] = row.DivideBy(t.coef(i, j))
	}

	for i := len(t.rows) - 1; i >= 0; i-- {
		j, err := t.rows[i].FirstNonzeroIndex()
		if err != nil {
			continue
		}
		for k := 0; k < i; k++ {
			f := t.coef(k, j)
			if t.policy.IsNearZero(f) {
				continue
			}
			_ = t.AddMultipleTimesRowToRow(f.Neg(), i, k)
		}
	}

	return t
}

// PivotIndices returns, for each row, the column of its first nonzero
// coefficient, or -1 for a zero row.
func (s *System) PivotIndices() []int {
	out := make([]int, len(s.rows))
	for i, row := range s.rows {
		j, err := row.FirstNonzeroIndex()
		if err != nil {
			out[i] = -1
			continue
		}
		out[i] = j
	}

	return out
}

// eliminate replaces row j with (p·row_j - f·row_r)/p; the pivot column of
// row j ends up exactly zero. Indices are in range by construction.
func (s *System) eliminate(p, f decimal.Decimal, r, j int) {
	_ = s.MultiplyCoefficientAndRow(p, j)
	_ = s.AddMultipleTimesRowToRow(f.Neg(), r, j)
	s.rows[j] = s.rows[j].DivideBy(p)
}

// coef returns coefficient (row, col); callers keep both in range.
func (s *System) coef(row, col int) decimal.Decimal {
	c, _ := s.rows[row].Coefficient(col)

	return c
}
