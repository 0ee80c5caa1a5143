// SPDX-License-Identifier: MIT
package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
)

// TestNew_Validation covers empty input, dimensionless equations and mixed
// dimensions.
func TestNew_Validation(t *testing.T) {
	_, err := linsys.New(nil)
	assert.ErrorIs(t, err, linsys.ErrEmptySystem)

	_, err = linsys.New([]hyperplane.Equation{{}})
	assert.ErrorIs(t, err, linsys.ErrZeroDimension)

	_, err = linsys.New([]hyperplane.Equation{{}, eq(t, "1", "1", "1")})
	assert.ErrorIs(t, err, linsys.ErrZeroDimension)

	_, err = linsys.New([]hyperplane.Equation{
		eq(t, "1", "1", "1"),
		eq(t, "1", "1", "1", "1"),
	})
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

// TestNew_CopiesInput ensures the caller's slice is not aliased.
func TestNew_CopiesInput(t *testing.T) {
	in := []hyperplane.Equation{eq(t, "1", "1", "1"), eq(t, "2", "0", "1")}
	s, err := linsys.New(in)
	require.NoError(t, err)

	in[0] = eq(t, "9", "9", "9")
	assert.Equal(t, "x_1 + x_2 = 1", row(t, s, 0).String())

	rows := s.Rows()
	rows[1] = in[0]
	assert.Equal(t, "x_2 = 2", row(t, s, 1).String())
}

// TestAccessors checks Len, Dimension, Row bounds and the adopted policy.
func TestAccessors(t *testing.T) {
	s := sys(t, []linsys.Option{linsys.WithEpsilon(1e-6), linsys.WithPrecision(12)},
		eq(t, "1", "1", "1", "1"),
		eq(t, "2", "0", "1", "1"),
	)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.Dimension())
	assert.Equal(t, int32(12), s.Policy().Precision)
	assert.True(t, s.Policy().Epsilon.Equal(d("0.000001")))
	assert.Equal(t, s.Policy(), row(t, s, 1).Policy(), "rows adopt the system policy")

	_, err := s.Row(2)
	assert.ErrorIs(t, err, linsys.ErrOutOfRange)
	_, err = s.Row(-1)
	assert.ErrorIs(t, err, linsys.ErrOutOfRange)
}

// TestSetRow replaces rows wholesale and validates them.
func TestSetRow(t *testing.T) {
	s := sys(t, nil, eq(t, "1", "1", "1"), eq(t, "2", "0", "1"))
	held := row(t, s, 0)

	require.NoError(t, s.SetRow(0, eq(t, "5", "3", "0")))
	assert.Equal(t, "3x_1 = 5", row(t, s, 0).String())
	assert.Equal(t, "x_1 + x_2 = 1", held.String(), "previously read rows are unaffected")

	assert.ErrorIs(t, s.SetRow(2, held), linsys.ErrOutOfRange)
	assert.ErrorIs(t, s.SetRow(0, eq(t, "1", "1", "1", "1")), linsys.ErrDimensionMismatch)
}

// TestRowOperations exercises the three elementary operations.
func TestRowOperations(t *testing.T) {
	s := sys(t, nil, eq(t, "1", "1", "1"), eq(t, "2", "0", "1"))

	require.NoError(t, s.SwapRows(0, 1))
	assert.Equal(t, "x_2 = 2", row(t, s, 0).String())
	assert.Equal(t, "x_1 + x_2 = 1", row(t, s, 1).String())

	require.NoError(t, s.MultiplyCoefficientAndRow(d("-2"), 0))
	assert.Equal(t, "-2x_2 = -4", row(t, s, 0).String())

	require.NoError(t, s.AddMultipleTimesRowToRow(d("0.5"), 0, 1))
	assert.Equal(t, "x_1 = -1", row(t, s, 1).String())

	assert.ErrorIs(t, s.SwapRows(0, 2), linsys.ErrOutOfRange)
	assert.ErrorIs(t, s.MultiplyCoefficientAndRow(d("1"), -1), linsys.ErrOutOfRange)
	assert.ErrorIs(t, s.AddMultipleTimesRowToRow(d("1"), 3, 0), linsys.ErrOutOfRange)
	assert.ErrorIs(t, s.AddMultipleTimesRowToRow(d("1"), 0, 3), linsys.ErrOutOfRange)
}

// TestClone_Independent verifies Clone does not share rows.
func TestClone_Independent(t *testing.T) {
	s := sys(t, nil, eq(t, "1", "1", "1"), eq(t, "2", "0", "1"))
	c := s.Clone()
	require.NoError(t, c.SwapRows(0, 1))

	assert.Equal(t, "x_1 + x_2 = 1", row(t, s, 0).String())
	assert.Equal(t, "x_2 = 2", row(t, c, 0).String())
}

// TestString renders the header and 1-based equation numbers.
func TestString(t *testing.T) {
	s := sys(t, nil, eq(t, "1", "1", "1", "1"), eq(t, "2", "0", "1", "0"))
	want := "Linear System:\n" +
		"Equation 1: x_1 + x_2 + x_3 = 1\n" +
		"Equation 2: x_2 = 2"
	assert.Equal(t, want, s.String())
}
