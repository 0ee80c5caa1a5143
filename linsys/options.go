// SPDX-License-Identifier: MIT

// Package linsys: functional configuration of the reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global numeric context: epsilon and division precision travel with
//     each System.
//   - Deterministic behavior: the logger observes, it never changes results.
package linsys

import (
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/tolerance"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the near-zero threshold for pivots and zero rows.
	DefaultEpsilon = tolerance.DefaultEpsilon

	// DefaultPrecision is the number of decimal places kept by divisions.
	DefaultPrecision = tolerance.DefaultPrecision
)

const (
	panicEpsilonInvalid   = "linsys: WithEpsilon: eps must be finite and positive"
	panicPrecisionInvalid = "linsys: WithPrecision: places must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps       float64     // > 0; DefaultEpsilon
	precision int32       // >= 1; DefaultPrecision
	logger    *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the near-zero threshold used for every pivot, zero-row
// and zero-normal decision.
// Panics with a stable message when eps is not finite and positive.
//
// AI-Hints:
//   - Keep eps well above 10^-precision: reduced entries carry rounding of
//     that order, and anything at or above eps counts as a pivot.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets the number of decimal places kept by every division
// (elimination factors, pivot normalization, base points).
// Panics when places < 1.
func WithPrecision(places int32) Option {
	if places < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = places }
}

// WithLogger routes debug events (row swaps, pivotless columns,
// classification) to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		precision: DefaultPrecision,
		logger:    zap.NewNop(),
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}

// policy converts the resolved options into a tolerance.Policy.
func (o Options) policy() tolerance.Policy {
	return tolerance.Policy{
		Epsilon:   decimal.NewFromFloat(o.eps),
		Precision: o.precision,
	}
}
