// Package linsys_test provides benchmarks for the reduction engine, using a
// deterministic, diagonally dominant random fill so every system is Unique.
package linsys_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/vector"
)

// benchSizes are the square system sizes to benchmark.
var benchSizes = []int{4, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkS   *linsys.System
	sinkSol linsys.Solution
)

// randomSystem builds an n×n system with integer coefficients in [-9, 9]
// and a dominant diagonal.
func randomSystem(b *testing.B, n int, seed int64) *linsys.System {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	eqs := make([]hyperplane.Equation, n)
	for i := range eqs {
		coords := make([]decimal.Decimal, n)
		for j := range coords {
			coords[j] = decimal.NewFromInt(int64(rng.Intn(19) - 9))
		}
		coords[i] = decimal.NewFromInt(int64(10 * n))
		v, err := vector.New(coords...)
		if err != nil {
			b.Fatal(err)
		}
		e, err := hyperplane.New(v, decimal.NewFromInt(int64(rng.Intn(100))))
		if err != nil {
			b.Fatal(err)
		}
		eqs[i] = e
	}
	s, err := linsys.New(eqs)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func BenchmarkTriangularForm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := randomSystem(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = s.TriangularForm()
			}
		})
	}
}

func BenchmarkRREF(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := randomSystem(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = s.RREF()
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := randomSystem(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sol, err := s.Solve()
				if err != nil {
					b.Fatal(err)
				}
				sinkSol = sol
			}
		})
	}
}
