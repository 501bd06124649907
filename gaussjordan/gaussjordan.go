// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/matinv/matrix"
)

// Invert writes the inverse of the order×order matrix in into out.
//
// Implementation:
//   - Stage 1 (Validate): in/out non-nil, order > 0, both exactly order×order.
//     Nothing is allocated and out is untouched on failure.
//   - Stage 2 (Augment): obtain the N×2N workspace from the allocator and fill
//     [in | I]; under the numeric policy reject NaN/±Inf input.
//   - Stage 3 (Eliminate): reduce the left half to I (see reduce).
//   - Stage 4 (Extract): flag a non-finite right half in Result.NonFinite
//     (an error only under WithFiniteResult), then copy it into out.
//
// The workspace is released on every exit path. out is written only in
// Stage 4, so any error before it leaves out exactly as the caller passed it.
//
// Returns:
//   - Result: order, row swaps, damped pivots (also populated on ErrSingular).
//   - error : wrapped with "Invert: ..." and matchable via errors.Is.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch.
//   - matrix.ErrNaNInf (non-finite input, policy on).
//   - ErrNonFiniteResult (WithFiniteResult only; also matches matrix.ErrNaNInf).
//   - matrix.ErrOutOfMemory (workspace or scratch row refused by the allocator).
//   - ErrSingular (WithStrictSingular only).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Invert(in, out matrix.Matrix, order int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	res := Result{Order: order}

	if err := matrix.ValidateOrder(in, order); err != nil {
		return res, gjErrorf(opInvert, err)
	}
	if err := matrix.ValidateOrder(out, order); err != nil {
		return res, gjErrorf(opInvert, err)
	}

	w, err := newWorkspace(order, o.alloc)
	if err != nil {
		return res, gjErrorf(opInvert, err)
	}
	defer w.release()

	if err = w.augment(in, o.validateNaNInf); err != nil {
		return res, gjErrorf(opInvert, err)
	}
	if err = reduce(w, &o, &res); err != nil {
		return res, gjErrorf(opInvert, err)
	}
	if i, j, bad := w.firstNonFinite(); bad {
		res.NonFinite = true
		if o.finiteResult {
			return res, gjErrorf(opInvert, fmt.Errorf("result (%d,%d): %w", i, j, ErrNonFiniteResult))
		}
	}
	if err = w.extract(out); err != nil {
		return res, gjErrorf(opInvert, err)
	}

	return res, nil
}

// Inverse allocates an N×N output and inverts m into it, N = m.Rows().
// Returns a nil matrix whenever err != nil.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// plus everything Invert returns.
func Inverse(m matrix.Matrix, opts ...Option) (*matrix.Dense, Result, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, Result{}, gjErrorf(opInverse, err)
	}
	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, Result{Order: n}, gjErrorf(opInverse, err)
	}
	res, err := Invert(m, out, n, opts...)
	if err != nil {
		return nil, res, gjErrorf(opInverse, err)
	}

	return out, res, nil
}
