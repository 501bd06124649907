// SPDX-License-Identifier: MIT

// Package gaussjordan: functional configuration for Invert/Inverse.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gaussjordan

import (
	"math"

	"github.com/katalvlaran/matinv/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude below which a pivot is unusable.
	// It is also the value forced onto a pivot that no row swap can repair.
	DefaultPivotTolerance = 1e-15

	// DefaultStrictSingular keeps the damped continuation on singular input.
	DefaultStrictSingular = false

	// DefaultValidateNaNInf rejects non-finite input.
	DefaultValidateNaNInf = true

	// DefaultFiniteResult writes a non-finite inverse and flags it in
	// Result.NonFinite instead of failing.
	DefaultFiniteResult = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "gaussjordan: WithPivotTolerance: tol must be finite and > 0"
	panicAllocatorNil     = "gaussjordan: WithAllocator: allocator must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol            float64          // > 0; DefaultPivotTolerance
	strict         bool             // DefaultStrictSingular
	validateNaNInf bool             // DefaultValidateNaNInf
	finiteResult   bool             // DefaultFiniteResult
	alloc          matrix.Allocator // matrix.HeapAllocator
}

// WithPivotTolerance sets the near-zero pivot threshold (and damping value).
// Panics when tol is NaN, ±Inf or <= 0.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithStrictSingular makes Invert fail with ErrSingular instead of damping.
func WithStrictSingular() Option {
	return func(o *Options) { o.strict = true }
}

// WithDampedSingular restores the default damped continuation.
func WithDampedSingular() Option {
	return func(o *Options) { o.strict = false }
}

// WithValidateNaNInf enables the finite-value policy (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value policy: NaN/Inf input is
// processed as-is.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithFiniteResult makes Invert fail with ErrNonFiniteResult (output
// untouched) when the computed inverse contains NaN or ±Inf.
func WithFiniteResult() Option {
	return func(o *Options) { o.finiteResult = true }
}

// WithAllocator routes the working matrix and swap scratch rows through a.
// Panics when a is nil.
func WithAllocator(a matrix.Allocator) Option {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(o *Options) { o.alloc = a }
}

// PivotTolerance reports the effective tolerance.
func (o Options) PivotTolerance() float64 { return o.tol }

// Strict reports whether singular input is an error.
func (o Options) Strict() bool { return o.strict }

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins for conflicting setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:            DefaultPivotTolerance,
		strict:         DefaultStrictSingular,
		validateNaNInf: DefaultValidateNaNInf,
		finiteResult:   DefaultFiniteResult,
		alloc:          matrix.HeapAllocator,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
