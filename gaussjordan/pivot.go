// SPDX-License-Identifier: MIT

package gaussjordan

import "math"

// findAndSwap looks for a replacement pivot for column p.
//
// It scans rows p+1..N-1 in increasing order and takes the first whose entry
// in column p has magnitude > tol, exchanging the whole 2N-wide rows through
// a scratch row borrowed from the workspace allocator. The scratch row is
// freed before return on every path.
//
// Returns the row that was swapped in and true, or (-1, false) when no row
// qualifies. The only error is an allocation failure for the scratch row.
func findAndSwap(p int, w *workspace, tol float64) (int, bool, error) {
	scratch, err := w.alloc.Alloc(w.stride)
	if err != nil {
		return -1, false, err
	}
	defer w.alloc.Free(scratch)

	for r := p + 1; r < w.n; r++ {
		if math.Abs(w.data[r*w.stride+p]) > tol {
			lower, upper := w.row(r), w.row(p)
			copy(scratch, lower)
			copy(lower, upper)
			copy(upper, scratch)

			return r, true, nil
		}
	}

	return -1, false, nil
}
