// Package linsys solves systems of linear equations by Gaussian elimination
// over exact decimals.
//
// A System is an ordered list of hyperplane.Equation values of one common
// dimension. The engine never mutates the caller's system: every reduction
// clones it first.
//
//	TriangularForm   forward elimination with pivot search and row swaps
//	RREF             pivots normalized to exactly 1, columns cleared above
//	Solve            Unique (point) | NoSolution | Infinite (parametrization)
//
// ✨ Key features:
//   - exact arithmetic (github.com/shopspring/decimal); only divisions round,
//     to WithPrecision decimal places
//   - one explicit near-zero threshold per system (WithEpsilon)
//   - rank-deficient and overdetermined systems: pivotless columns become free
//     variables, surplus rows collapse to 0 = 0, contradictions to 0 = k
//   - parametric solution sets: x = p + t_1·d_1 + ... + t_f·d_f
//   - structured debug events through go.uber.org/zap (WithLogger)
//
// ⚙️ Usage:
//
//	s, err := linsys.New([]hyperplane.Equation{
//		hyperplane.NewLine(d("1"), d("1"), d("1")),
//		hyperplane.NewLine(d("0"), d("1"), d("2")),
//	})
//	sol, err := s.Solve()
//	fmt.Println(sol.Kind, sol) // unique Vector(-1, 2)
//
// NoSolution and Infinite are results, not errors. Errors are reserved for
// malformed input (ErrEmptySystem, ErrDimensionMismatch, ErrOutOfRange,
// ErrParameterCount) and can be matched with errors.Is.
//
// 📈 Complexity: O(min(m,d)·m·d) decimal operations for m equations in d
// dimensions.
package linsys
