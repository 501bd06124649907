// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"math"
)

// reduce runs Gauss-Jordan elimination on w in place and records swaps and
// damped pivots into res.
//
// Algorithm Outline (R = N, C = 2N):
//  1. For i = 0..R-1 take pivot = w[i][i].
//  2. If |pivot| < tol, try findAndSwap. If no row qualifies, force
//     w[i][i] = tol (damping) and re-read the pivot; under strict mode
//     return ErrSingular instead.
//  3. Divide all C entries of row i by the pivot (read once, before the loop).
//  4. For every k != i: factor = w[k][i]; w[k][j] -= factor*w[i][j], j = 0..C-1.
//
// Rows with factor == 0 are still processed, so results match the textbook
// loop bit for bit (including signed zeros).
//
// Complexity: Time O(R·R·C) = O(N³), Space O(C) for an occasional scratch row.
func reduce(w *workspace, o *Options, res *Result) error {
	var (
		i, j, k int
		pivot   float64
		factor  float64
		rowI    []float64
		rowK    []float64
	)
	for i = 0; i < w.n; i++ {
		rowI = w.row(i)
		pivot = rowI[i]

		if math.Abs(pivot) < o.tol {
			r, swapped, err := findAndSwap(i, w, o.tol)
			if err != nil {
				return fmt.Errorf("pivot %d: %w", i, err)
			}
			if swapped {
				res.Swaps = append(res.Swaps, RowSwap{Pivot: i, Row: r})
			} else {
				res.Damped = append(res.Damped, i)
				if o.strict {
					return fmt.Errorf("pivot %d: %w", i, ErrSingular)
				}
				rowI[i] = o.tol
			}
			pivot = rowI[i]
		}

		for j = range rowI {
			rowI[j] /= pivot
		}

		for k = 0; k < w.n; k++ {
			if k == i {
				continue
			}
			rowK = w.row(k)
			factor = rowK[i]
			for j = range rowK {
				rowK[j] -= factor * rowI[j]
			}
		}
	}

	return nil
}
