// SPDX-License-Identifier: MIT

package hyperplane

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/tolerance"
)

const (
	panicEpsilonInvalid = "hyperplane: WithEpsilon: eps must be finite and positive"
	panicPolicyInvalid  = "hyperplane: WithPolicy: invalid numeric policy"
)

// Option configures an Equation at construction time.
type Option func(*options)

type options struct {
	policy tolerance.Policy
}

// WithEpsilon sets the near-zero threshold used by the equation's predicates
// (first nonzero lookup, parallelism, equality).
// Panics when eps is not finite and positive (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	e := decimal.NewFromFloat(eps)

	return func(o *options) { o.policy.Epsilon = e }
}

// WithPolicy replaces the whole numeric policy (epsilon and precision).
// Panics when p does not validate.
func WithPolicy(p tolerance.Policy) Option {
	if err := p.Validate(); err != nil {
		panic(panicPolicyInvalid)
	}

	return func(o *options) { o.policy = p }
}

// gatherOptions applies setters on top of tolerance.DefaultPolicy.
func gatherOptions(user ...Option) options {
	o := options{policy: tolerance.DefaultPolicy()}
	for _, set := range user {
		set(&o)
	}

	return o
}
