// SPDX-License-Identifier: MIT

package gaussjordan

// RowSwap records one exchange performed by the pivot search:
// the contents of Row were swapped with those of Pivot.
type RowSwap struct {
	Pivot int // pivot row index (== pivot column)
	Row   int // lower row that supplied a usable pivot
}

// Result describes how an inversion went.
//
// Fields:
//   - Order: N of the N×N operands.
//   - Swaps: row exchanges in the order they happened.
//   - Damped: pivot indices that had no usable row and were forced to the
//     damping value. Non-empty Damped means the output is an approximation
//     of a matrix that has no true inverse.
//   - NonFinite: the inverse holds NaN or ±Inf (typically overflow after
//     damping). The values are still written unless WithFiniteResult is set.
type Result struct {
	Order     int
	Swaps     []RowSwap
	Damped    []int
	NonFinite bool
}

// Degenerate reports whether any pivot had to be damped.
func (r Result) Degenerate() bool { return len(r.Damped) > 0 }
