// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/internal/render"
	"github.com/katalvlaran/linsolve/vector"
)

// Parametrization describes an affine solution set as
//
//	x = BasePoint + t_1·Directions[0] + ... + t_f·Directions[f-1]
//
// where t_k is the parameter of free variable FreeVariables[k].
type Parametrization struct {
	BasePoint     vector.Vector
	Directions    []vector.Vector
	FreeVariables []int
}

// Expression is one coordinate of a parametrization:
// x_Variable = Constant + Σ Coefficients[k]·t_k.
type Expression struct {
	Variable     int
	Constant     decimal.Decimal
	Coefficients []decimal.Decimal
}

// String renders "x_1 = -5 - 2t_1"; parameters with a zero coefficient are
// left out.
func (e Expression) String() string {
	var b strings.Builder
	b.WriteString(render.Variable(e.Variable))
	b.WriteString(" = ")
	b.WriteString(render.Number(e.Constant))
	for k, c := range e.Coefficients {
		if render.IsDisplayZero(c) {
			continue
		}
		b.WriteString(" ")
		b.WriteString(render.Coefficient(c, false))
		b.WriteString(render.Param(k))
	}

	return b.String()
}

// parametrize builds the parametrization of an RREF receiver.
// Pivot variable j with pivot row i: x_j = constant(i) - Σ coef(i, free_k)·t_k.
// Free variable free_k: x = t_k.
func (s *System) parametrize(pivotRow, free []int) (*Parametrization, error) {
	base := zeros(s.dim)
	dirs := make([][]decimal.Decimal, len(free))
	for k := range dirs {
		dirs[k] = zeros(s.dim)
	}

	for j, i := range pivotRow {
		if i < 0 {
			continue
		}
		base[j] = s.rows[i].Constant()
		for k, f := range free {
			dirs[k][j] = s.coef(i, f).Neg()
		}
	}
	for k, f := range free {
		dirs[k][f] = decimal.NewFromInt(1)
	}

	bp, err := vector.New(base...)
	if err != nil {
		return nil, err
	}
	p := &Parametrization{
		BasePoint:     bp,
		Directions:    make([]vector.Vector, len(free)),
		FreeVariables: append([]int(nil), free...),
	}
	for k := range dirs {
		if p.Directions[k], err = vector.New(dirs[k]...); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}

	return out
}

// Dimension returns the dimension of the ambient space.
func (p *Parametrization) Dimension() int { return p.BasePoint.Dim() }

// Point evaluates the parametrization at params, one value per free variable.
// Errors: ErrParameterCount.
func (p *Parametrization) Point(params ...decimal.Decimal) (vector.Vector, error) {
	if len(params) != len(p.Directions) {
		return vector.Vector{}, linsysErrorf(opParamEval,
			fmt.Errorf("got %d, want %d: %w", len(params), len(p.Directions), ErrParameterCount))
	}
	x := p.BasePoint
	for k, t := range params {
		var err error
		if x, err = x.Plus(p.Directions[k].TimesScalar(t)); err != nil {
			return vector.Vector{}, linsysErrorf(opParamEval, err)
		}
	}

	return x, nil
}

// Expressions returns one affine expression per coordinate.
func (p *Parametrization) Expressions() []Expression {
	base := p.BasePoint.Coordinates()
	out := make([]Expression, len(base))
	for j := range base {
		e := Expression{
			Variable:     j,
			Constant:     base[j],
			Coefficients: make([]decimal.Decimal, len(p.Directions)),
		}
		for k, d := range p.Directions {
			e.Coefficients[k], _ = d.At(j)
		}
		out[j] = e
	}

	return out
}

// String renders one expression per line.
func (p *Parametrization) String() string {
	exprs := p.Expressions()
	lines := make([]string, len(exprs))
	for i, e := range exprs {
		lines[i] = e.String()
	}

	return strings.Join(lines, "\n")
}
