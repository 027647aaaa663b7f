// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization and solve
// kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The factorization never pivots. By default a zero pivot is divided
//     through and the factors/solution carry ±Inf or NaN, which callers can
//     inspect. The pivot guard turns that situation into ErrSingular instead.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotGuard keeps zero pivots silent (±Inf/NaN propagate).
	DefaultPivotGuard = false

	// DefaultPivotEpsilon is the guard threshold: |pivot| <= eps is singular.
	// Zero means only an exact 0.0 pivot trips the guard.
	DefaultPivotEpsilon = 0.0
)

const panicPivotEpsilonInvalid = "matrix: WithPivotEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotGuard bool    // DefaultPivotGuard
	pivotEps   float64 // >= 0; DefaultPivotEpsilon
}

// WithPivotGuard makes LU and the triangular solves fail with ErrSingular
// when a pivot U[j][j] is zero (or within the configured epsilon).
func WithPivotGuard() Option {
	return func(o *Options) {
		o.pivotGuard = true
	}
}

// WithoutPivotGuard restores the default: zero pivots propagate as ±Inf/NaN.
func WithoutPivotGuard() Option {
	return func(o *Options) {
		o.pivotGuard = false
	}
}

// WithPivotEpsilon enables the pivot guard with a tolerance: any pivot with
// |pivot| <= eps is treated as singular.
// Panics if eps is negative, NaN or ±Inf.
func WithPivotEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) {
		o.pivotGuard = true
		o.pivotEps = eps
	}
}

// NewOptions resolves opts over the defaults. Exposed for callers that want
// to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotGuard reports whether zero pivots are turned into ErrSingular.
func (o Options) PivotGuard() bool { return o.pivotGuard }

// PivotEpsilon returns the guard threshold.
func (o Options) PivotEpsilon() float64 { return o.pivotEps }

func defaultOptions() Options {
	return Options{
		pivotGuard: DefaultPivotGuard,
		pivotEps:   DefaultPivotEpsilon,
	}
}

// gatherOptions applies user options over defaults in order; later wins.
// nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// singular reports whether pivot must be rejected under the current policy.
// Always false while the guard is off.
func (o Options) singular(pivot float64) bool {
	if !o.pivotGuard {
		return false
	}

	return math.Abs(pivot) <= o.pivotEps
}
