// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its consumers (gaussjordan, internal/*). All algorithms MUST
// return these sentinels and tests MUST check them via errors.Is. No algorithm
// should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Return sentinels directly from validators; wrap
// with fmt.Errorf("ctx: %w", ErrX) at the outer boundary. Callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// order -> nil -> shape/dimension -> index -> NaN/Inf -> allocation.

var (
	// ErrInvalidDimensions indicates that requested dimensions (or an order) are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// non-square operand where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfMemory is returned by an Allocator that cannot provide the
	// requested buffer. Consumers propagate it without partial results.
	ErrOutOfMemory = errors.New("matrix: out of memory")

	// ErrRaggedRows indicates that a row-slice literal has rows of different lengths.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)
