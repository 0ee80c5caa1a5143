// SPDX-License-Identifier: MIT

package linsys

// OptionsSnapshot is a read-only view of the resolved options for
// linsys_test.
type OptionsSnapshot struct {
	Eps       float64
	Precision int32
	HasLogger bool
}

// GatherOptionsSnapshot_TestOnly resolves opts against the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Precision: o.precision, HasLogger: o.logger != nil}
}
