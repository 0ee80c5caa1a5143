// SPDX-License-Identifier: MIT

// Package render holds the display conventions shared by equations and
// parametrizations: 3-decimal half-even rounding, integers printed without a
// fractional part, unit coefficients elided, and sign placement with no
// leading "+".
package render

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept on display.
const Places int32 = 3

var one = decimal.NewFromInt(1)

// Round applies display rounding (half-even, like a decimal context).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}

// IsDisplayZero reports whether d renders as 0.
func IsDisplayZero(d decimal.Decimal) bool {
	return Round(d).IsZero()
}

// Number renders d rounded to Places: integers as "4", everything else
// with exactly Places digits ("2.500").
func Number(d decimal.Decimal) string {
	r := Round(d)
	if r.IsInteger() {
		return r.Truncate(0).String()
	}

	return r.StringFixed(Places)
}

// Coefficient renders the signed prefix of a term. The first term carries
// only a bare "-" when negative; later terms carry "+ " or "- ". Magnitude 1
// is elided so that callers can append the variable name directly.
func Coefficient(c decimal.Decimal, initial bool) string {
	r := Round(c)
	out := ""
	if r.IsNegative() {
		out += "-"
	}
	if r.IsPositive() && !initial {
		out += "+"
	}
	if !initial {
		out += " "
	}
	if !r.Abs().Equal(one) {
		out += Number(r.Abs())
	}

	return out
}

// Variable names coordinate i (zero-based) as "x_{i+1}".
func Variable(i int) string {
	return "x_" + strconv.Itoa(i+1)
}

// Param names free parameter k (zero-based) as "t_{k+1}".
func Param(k int) string {
	return "t_" + strconv.Itoa(k+1)
}
