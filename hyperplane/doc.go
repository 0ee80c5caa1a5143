// Package hyperplane models linear equations as geometric objects.
//
// An Equation is the affine hyperplane normal·x = constant:
//
//	2D  "line":   a·x_1 + b·x_2 = k           NewLine(a, b, k)
//	3D  "plane":  a·x_1 + b·x_2 + c·x_3 = k   NewPlane(a, b, c, k)
//	nD            n·x = k                      New(n, k)
//
// ✨ Key features:
//   - exact decimal coefficients (github.com/shopspring/decimal)
//   - base point: c/a_i·e_i for the first non-near-zero coefficient a_i
//   - IsParallelTo / Equal (coincident hyperplanes), zero-normal aware
//   - immutable row operations Scale / AddScaled for elimination engines
//   - human-readable rendering: "x_1 - 2.500x_2 + x_3 = 4"
//   - 2D line intersection (IntersectionWith)
//
// ⚙️ Usage:
//
//	l1 := hyperplane.NewLine(d("4.046"), d("2.836"), d("1.21"))
//	l2 := hyperplane.NewLine(d("10.115"), d("7.09"), d("3.025"))
//	fmt.Println(l1.IsParallelTo(l2), l1.Equal(l2)) // true true
//
// Numeric policy: every near-zero decision uses the equation's
// tolerance.Policy (default epsilon 1e-10); override with WithEpsilon or
// WithPolicy.
package hyperplane
