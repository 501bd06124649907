// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerance-based comparison of two matrices, used to check computed
//     inverses against references without exact float equality.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// AllClose reports whether |a[i,j] - b[i,j]| <= atol + rtol*|b[i,j]| holds
// for every entry. A NaN in either operand is never close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are taken by magnitude.
//
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1). Stops at the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// NaN compares false, so it is never within tolerance.
	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
