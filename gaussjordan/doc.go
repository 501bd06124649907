// SPDX-License-Identifier: MIT

// Package gaussjordan inverts square matrices with Gauss-Jordan elimination,
// swapping rows only when the current pivot is numerically unusable.
//
// 🚀 What is Gauss-Jordan inversion?
//
//	Place A beside the identity to form the N×2N augmented matrix [A | I],
//	then apply row operations until the left half becomes I. The same
//	operations turn the right half into A⁻¹:
//
//	  [A | I]  ──row ops──▶  [I | A⁻¹]
//
// ✨ Key features:
//   - Deterministic: pivots are processed strictly in order 0..N-1; a row
//     swap happens only when |pivot| < tolerance (default 1e-15), taking the
//     first lower row whose entry in the pivot column exceeds the tolerance.
//   - Degenerate continuation: when no such row exists the pivot is forced to
//     the tolerance value and elimination continues, so singular input yields
//     a finite (meaningless) result instead of an abort. The condition is
//     reported in Result.Damped; WithStrictSingular turns it into ErrSingular.
//   - All-or-nothing output: the caller's output matrix is written only after
//     elimination succeeded.
//   - Scoped scratch memory: the working matrix and the swap scratch row come
//     from a matrix.Allocator and are freed on every exit path.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matinv/gaussjordan"
//
//	out, _ := matrix.NewDense(n, n)
//	res, err := gaussjordan.Invert(a, out, n)
//	if err != nil {
//	  // ErrInvalidDimensions / ErrDimensionMismatch / ErrNaNInf / ErrOutOfMemory
//	}
//	if res.Degenerate() {
//	  // singular or rank-deficient input; out holds a damped approximation
//	}
//
// Performance:
//
//   - Time:   O(N³) (N pivots × N rows × 2N columns)
//   - Memory: O(N²) scratch (2N² floats) plus one 2N scratch row per swap
//
// Invert keeps no state between calls; concurrent calls on distinct buffers
// need no locking.
package gaussjordan
