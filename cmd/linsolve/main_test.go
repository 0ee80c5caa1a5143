// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/linsys"
)

// writeSystem stores a YAML system in dir and returns its path.
func writeSystem(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

const twoLines = `name: two lines
equations:
  - normal: [1, 1]
    constant: 1
  - normal: [0, 1]
    constant: 2
`

const contradiction = `equations:
  - normal: [1, 1, 1]
    constant: 1
  - normal: [1, 1, 1]
    constant: 2
`

const singlePlane = `equations:
  - normal: [2, -4, 2]
    constant: 6
`

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolveCmd_Output(t *testing.T) {
	dir := t.TempDir()
	a := writeSystem(t, dir, "a.yaml", twoLines)
	b := writeSystem(t, dir, "contradiction.yaml", contradiction)
	c := writeSystem(t, dir, "plane.yaml", singlePlane)

	out, err := run(t, "solve", a, b, c, "--rref", "-j", "2")
	require.NoError(t, err)

	want := "== two lines (" + a + ")\n" +
		"Linear System:\nEquation 1: x_1 + x_2 = 1\nEquation 2: x_2 = 2\n" +
		"Reduced:\n  1: x_1 = -1\n  2: x_2 = 2\n" +
		"Result: unique\nVector(-1, 2)\n\n" +
		"== contradiction (" + b + ")\n" +
		"Linear System:\nEquation 1: x_1 + x_2 + x_3 = 1\nEquation 2: x_1 + x_2 + x_3 = 2\n" +
		"Reduced:\n  1: x_1 + x_2 + x_3 = 1\n  2: 0 = 1\n" +
		"Result: no solution\n\n" +
		"== plane (" + c + ")\n" +
		"Linear System:\nEquation 1: 2x_1 - 4x_2 + 2x_3 = 6\n" +
		"Reduced:\n  1: x_1 - 2x_2 + x_3 = 3\n" +
		"Result: infinite\nx_1 = 3 + 2t_1 - t_2\nx_2 = 0 + t_1\nx_3 = 0 + t_2\n\n"
	assert.Equal(t, want, out)
}

func TestSolveCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeSystem(t, dir, "a.yaml", twoLines)

	_, err := run(t, "solve")
	assert.Error(t, err, "at least one file is required")

	_, err = run(t, "solve", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "solve", a, "--epsilon", "-1")
	assert.Error(t, err)

	_, err = run(t, "solve", a, "--precision", "0")
	assert.Error(t, err)

	bad := writeSystem(t, dir, "bad.yaml", "equations:\n  - normal: [1, x]\n    constant: 1\n")
	_, err = run(t, "solve", a, bad)
	assert.Error(t, err)
}

func TestSolveAll_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	p := writeSystem(t, dir, "near.yaml", `epsilon: 1.0e-10
equations:
  - normal: [1, 1]
    constant: 1
  - normal: [1, "1.000001"]
    constant: 1
`)
	reports, err := solveAll(context.Background(), zap.NewNop(), []string{p}, 1, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, linsys.Unique, reports[0].sol.Kind)

	reports, err = solveAll(context.Background(), zap.NewNop(), []string{p}, 0, []linsys.Option{linsys.WithEpsilon(1e-3)})
	require.NoError(t, err)
	assert.Equal(t, linsys.Infinite, reports[0].sol.Kind)
	assert.Equal(t, "near", reports[0].name)
}
