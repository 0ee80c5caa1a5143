package linsys_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
)

// ExampleSystem_Solve solves the overdetermined but consistent system
//
//	x + y + z = 1
//	y = 2
//	x + y - z = 3
//	x - 2z = 2
func ExampleSystem_Solve() {
	d := decimal.RequireFromString
	s, err := linsys.New([]hyperplane.Equation{
		hyperplane.NewPlane(d("1"), d("1"), d("1"), d("1")),
		hyperplane.NewPlane(d("0"), d("1"), d("0"), d("2")),
		hyperplane.NewPlane(d("1"), d("1"), d("-1"), d("3")),
		hyperplane.NewPlane(d("1"), d("0"), d("-2"), d("2")),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol, err := s.Solve()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sol.Kind)
	fmt.Println(sol.RREF)
	fmt.Println(sol)
	// Output:
	// unique
	// Linear System:
	// Equation 1: x_1 = 0
	// Equation 2: x_2 = 2
	// Equation 3: x_3 = -1
	// Equation 4: 0 = 0
	// Vector(0, 2, -1)
}

// ExampleParametrization_String parametrizes a system with a dependent row.
func ExampleParametrization_String() {
	d := decimal.RequireFromString
	s, _ := linsys.New([]hyperplane.Equation{
		hyperplane.NewPlane(d("1"), d("2"), d("3"), d("1")),
		hyperplane.NewPlane(d("2"), d("4"), d("6"), d("2")),
		hyperplane.NewPlane(d("1"), d("2"), d("4"), d("3")),
	})
	sol, _ := s.Solve()
	fmt.Println(sol.Kind, sol.Parametrization.FreeVariables)
	fmt.Println(sol.Parametrization)
	// Output:
	// infinite [1]
	// x_1 = -5 - 2t_1
	// x_2 = 0 + t_1
	// x_3 = 2
}

// ExampleSystem_TriangularForm shows a contradiction surfacing as 0 = 1.
func ExampleSystem_TriangularForm() {
	d := decimal.RequireFromString
	s, _ := linsys.New([]hyperplane.Equation{
		hyperplane.NewPlane(d("1"), d("1"), d("1"), d("1")),
		hyperplane.NewPlane(d("1"), d("1"), d("1"), d("2")),
	})
	fmt.Println(s.TriangularForm())
	// Output:
	// Linear System:
	// Equation 1: x_1 + x_2 + x_3 = 1
	// Equation 2: 0 = 1
}
