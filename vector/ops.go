// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/tolerance"
)

// sameDim returns ErrDimensionMismatch wrapped with tag when dims differ.
func sameDim(tag string, v, w Vector) error {
	if len(v.coords) != len(w.coords) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Plus returns v + w.
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := sameDim(opPlus, v, w); err != nil {
		return Vector{}, err
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Add(w.coords[i])
	}

	return Vector{coords: out}, nil
}

// Minus returns v - w.
// Errors: ErrDimensionMismatch.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := sameDim(opMinus, v, w); err != nil {
		return Vector{}, err
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Sub(w.coords[i])
	}

	return Vector{coords: out}, nil
}

// TimesScalar returns c·v.
func (v Vector) TimesScalar(c decimal.Decimal) Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Mul(c)
	}

	return Vector{coords: out}
}

// Dot returns the exact inner product v·w.
// Errors: ErrDimensionMismatch.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := sameDim(opDot, v, w); err != nil {
		return decimal.Zero, err
	}

	return v.dot(w), nil
}

// dot assumes equal dimensions.
func (v Vector) dot(w Vector) decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return sum
}

// Cross returns v × w for 3-dimensional vectors.
// Errors: ErrDimensionMismatch when either operand is not 3D.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) != 3 || len(w.coords) != 3 {
		return Vector{}, vectorErrorf(opCross, ErrDimensionMismatch)
	}
	x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
	x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]

	return Vector{coords: []decimal.Decimal{
		y1.Mul(z2).Sub(y2.Mul(z1)),
		z1.Mul(x2).Sub(z2.Mul(x1)),
		x1.Mul(y2).Sub(x2.Mul(y1)),
	}}, nil
}

// Magnitude returns the Euclidean length ‖v‖ (float64: square roots are
// not exact in decimal).
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.dot(v).InexactFloat64())
}

// IsZero reports whether every coordinate is near zero under p.
func (v Vector) IsZero(p tolerance.Policy) bool {
	for _, c := range v.coords {
		if !p.IsNearZero(c) {
			return false
		}
	}

	return true
}

// Normalized returns v/‖v‖.
// Errors: ErrDegenerateVector when v is zero under p.
func (v Vector) Normalized(p tolerance.Policy) (Vector, error) {
	if v.IsZero(p) {
		return Vector{}, vectorErrorf(opNormalized, ErrDegenerateVector)
	}
	mag := decimal.NewFromFloat(v.Magnitude())
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = p.Div(v.coords[i], mag)
	}

	return Vector{coords: out}, nil
}

// AngleWith returns the angle between v and w in radians, in [0, π].
// Errors: ErrDimensionMismatch, ErrDegenerateVector (either operand zero).
func (v Vector) AngleWith(w Vector, p tolerance.Policy) (float64, error) {
	if err := sameDim(opAngle, v, w); err != nil {
		return 0, err
	}
	if v.IsZero(p) || w.IsZero(p) {
		return 0, vectorErrorf(opAngle, ErrDegenerateVector)
	}
	cos := v.dot(w).InexactFloat64() / (v.Magnitude() * w.Magnitude())
	// clamp rounding drift outside [-1, 1]
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}

// IsParallelTo reports whether v and w point along the same line.
// The zero vector is parallel to everything. Otherwise the test is
// sin²θ < eps², evaluated exactly through Lagrange's identity
// ‖v‖²‖w‖² − (v·w)² = Σ_{i<j}(v_i w_j − v_j w_i)², so it never takes a
// square root or an arccos.
// Mismatched dimensions are never parallel.
func (v Vector) IsParallelTo(w Vector, p tolerance.Policy) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	if v.IsZero(p) || w.IsZero(p) {
		return true
	}
	minors := decimal.Zero
	for i := 0; i < len(v.coords); i++ {
		for j := i + 1; j < len(v.coords); j++ {
			m := v.coords[i].Mul(w.coords[j]).Sub(v.coords[j].Mul(w.coords[i]))
			minors = minors.Add(m.Mul(m))
		}
	}
	scale := v.dot(v).Mul(w.dot(w)).Mul(p.Epsilon).Mul(p.Epsilon)

	return minors.LessThan(scale)
}

// IsOrthogonalTo reports |v·w| < eps. Mismatched dimensions are never orthogonal.
func (v Vector) IsOrthogonalTo(w Vector, p tolerance.Policy) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}

	return p.IsNearZero(v.dot(w))
}

// ComponentParallelTo returns the projection of v onto basis:
// ((v·b)/(b·b))·b.
// Errors: ErrDimensionMismatch, ErrDegenerateVector (zero basis).
func (v Vector) ComponentParallelTo(basis Vector, p tolerance.Policy) (Vector, error) {
	if err := sameDim(opProject, v, basis); err != nil {
		return Vector{}, err
	}
	if basis.IsZero(p) {
		return Vector{}, vectorErrorf(opProject, ErrDegenerateVector)
	}
	k := p.Div(v.dot(basis), basis.dot(basis))

	return basis.TimesScalar(k), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis.
// Errors: ErrDimensionMismatch, ErrDegenerateVector (zero basis).
func (v Vector) ComponentOrthogonalTo(basis Vector, p tolerance.Policy) (Vector, error) {
	proj, err := v.ComponentParallelTo(basis, p)
	if err != nil {
		return Vector{}, vectorErrorf(opReject, err)
	}

	return v.Minus(proj)
}
