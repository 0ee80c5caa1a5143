// Package linsolve is an exact-decimal toolkit for linear equations: vectors,
// hyperplanes (lines, planes and their n-dimensional kin) and a
// Gaussian-elimination engine that classifies and parametrizes solution sets.
//
// 🚀 What is inside?
//
//	tolerance/       numeric policy: near-zero epsilon and division precision
//	vector/          immutable decimal vectors: arithmetic, angles, projections
//	hyperplane/      equations normal·x = k, parallelism, coincidence, display
//	linsys/          systems of equations: triangular form, RREF, Solve
//	cmd/linsolve/    CLI solving YAML system files
//
// ✨ Why exact decimals?
//
//   - Coefficients such as 0.786 or 5.862 stay exact; sums and products never
//     drift, and only divisions round (to a configurable precision).
//   - Zero tests use one explicit epsilon per system, never a global context.
//
// Quick example:
//
//	x + y = 1
//	    y = 2      →  unique solution (-1, 2)
//
//	go get github.com/katalvlaran/linsolve
package linsolve
