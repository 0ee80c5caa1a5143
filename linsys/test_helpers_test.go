// SPDX-License-Identifier: MIT
// Package linsys_test contains shared fixtures for the engine tests.

package linsys_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/vector"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// eq parses "constant, normal..." into an equation.
func eq(tb testing.TB, constant string, normal ...string) hyperplane.Equation {
	tb.Helper()
	e, err := hyperplane.FromStrings(normal, constant)
	require.NoError(tb, err)

	return e
}

// sys builds a system or fails.
func sys(tb testing.TB, opts []linsys.Option, eqs ...hyperplane.Equation) *linsys.System {
	tb.Helper()
	s, err := linsys.New(eqs, opts...)
	require.NoError(tb, err)

	return s
}

// row returns row i of s or fails.
func row(tb testing.TB, s *linsys.System, i int) hyperplane.Equation {
	tb.Helper()
	r, err := s.Row(i)
	require.NoError(tb, err)

	return r
}

// requirePoint compares v to want coordinate-wise within tol.
func requirePoint(tb testing.TB, v vector.Vector, tol string, want ...string) {
	tb.Helper()
	require.Equal(tb, len(want), v.Dim())
	for i, w := range want {
		got, err := v.At(i)
		require.NoError(tb, err)
		require.Truef(tb, got.Sub(d(w)).Abs().LessThan(d(tol)),
			"coordinate %d: got %s, want %s", i, got, w)
	}
}

// dependentSystem: second row is twice the first, third adds a pivot on z.
func dependentSystem(tb testing.TB, opts ...linsys.Option) *linsys.System {
	tb.Helper()

	return sys(tb, opts,
		eq(tb, "1", "1", "2", "3"),
		eq(tb, "2", "2", "4", "6"),
		eq(tb, "3", "1", "2", "4"),
	)
}

// fourPlanes is overdetermined but consistent with solution (0, 2, -1).
func fourPlanes(tb testing.TB, opts ...linsys.Option) *linsys.System {
	tb.Helper()

	return sys(tb, opts,
		eq(tb, "1", "1", "1", "1"),
		eq(tb, "2", "0", "1", "0"),
		eq(tb, "3", "1", "1", "-1"),
		eq(tb, "2", "1", "0", "-2"),
	)
}
