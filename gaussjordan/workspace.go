// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matinv/matrix"
)

// workspace is the N×2N augmented matrix [A | I] in one row-major buffer.
// It is owned by a single Invert call and must be released before return.
type workspace struct {
	n      int              // order N
	stride int              // 2N, floats per row
	data   []float64        // len == n*stride
	alloc  matrix.Allocator // source of data (and of swap scratch rows)
}

// newWorkspace obtains the N×2N buffer from alloc.
// Errors: matrix.ErrOutOfMemory when the request is refused or would overflow int.
func newWorkspace(n int, alloc matrix.Allocator) (*workspace, error) {
	if n > math.MaxInt/(2*n) {
		return nil, fmt.Errorf("workspace %dx%d: %w", n, 2*n, matrix.ErrOutOfMemory)
	}
	stride := 2 * n
	buf, err := alloc.Alloc(n * stride)
	if err != nil {
		return nil, fmt.Errorf("workspace %dx%d: %w", n, stride, err)
	}

	return &workspace{n: n, stride: stride, data: buf, alloc: alloc}, nil
}

// release hands the buffer back to the allocator. Safe to call twice.
func (w *workspace) release() {
	if w.data == nil {
		return
	}
	w.alloc.Free(w.data)
	w.data = nil
}

// row returns the backing slice of augmented row i (all 2N columns).
func (w *workspace) row(i int) []float64 {
	return w.data[i*w.stride : (i+1)*w.stride : (i+1)*w.stride]
}

// augment fills [A | I]. Every cell is written explicitly, so allocators that
// recycle dirty buffers are fine.
//
// Implementation:
//   - Stage 1: left half ← in (flat copy for *matrix.Dense, At otherwise).
//   - Stage 2: reject NaN/±Inf when validate is set.
//   - Stage 3: right half ← identity.
//
// Complexity: O(N²).
func (w *workspace) augment(in matrix.Matrix, validate bool) error {
	var (
		i, j int
		v    float64
		row  []float64
		err  error
	)
	d, isDense := in.(*matrix.Dense)
	for i = 0; i < w.n; i++ {
		row = w.row(i)
		if isDense {
			src, rerr := d.RawRow(i)
			if rerr != nil {
				return rerr
			}
			copy(row[:w.n], src)
		} else {
			for j = 0; j < w.n; j++ {
				if v, err = in.At(i, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				row[j] = v
			}
		}
		if validate {
			for j = 0; j < w.n; j++ {
				if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
					return fmt.Errorf("input (%d,%d): %w", i, j, matrix.ErrNaNInf)
				}
			}
		}
		for j = 0; j < w.n; j++ {
			row[w.n+j] = 0
		}
		row[w.n+i] = 1
	}

	return nil
}

// firstNonFinite locates the first NaN/±Inf of the right half in row-major
// order; ok is false when the inverse is finite.
// Complexity: O(N²).
func (w *workspace) firstNonFinite() (row, col int, ok bool) {
	var i, j int
	var r []float64
	for i = 0; i < w.n; i++ {
		r = w.row(i)
		for j = w.n; j < w.stride; j++ {
			if math.IsNaN(r[j]) || math.IsInf(r[j], 0) {
				return i, j - w.n, true
			}
		}
	}

	return 0, 0, false
}

// extract copies the right half into out.
// *matrix.Dense gets a per-row copy; other implementations go through Set.
// On the Set path out is snapshotted first, and a failing Set rolls back the
// cells already written, so out is either fully updated or unchanged.
// Complexity: O(N²), plus O(N²) snapshot space on the Set path.
func (w *workspace) extract(out matrix.Matrix) error {
	var i, j int
	var err error
	if d, ok := out.(*matrix.Dense); ok {
		var dst []float64
		for i = 0; i < w.n; i++ {
			if dst, err = d.RawRow(i); err != nil {
				return err
			}
			copy(dst, w.row(i)[w.n:])
		}

		return nil
	}

	prev := make([]float64, w.n*w.n)
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			if prev[i*w.n+j], err = out.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	var row []float64
	for i = 0; i < w.n; i++ {
		row = w.row(i)
		for j = 0; j < w.n; j++ {
			if err = out.Set(i, j, row[w.n+j]); err != nil {
				restore(out, prev, w.n, i*w.n+j)
				return fmt.Errorf("Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// restore writes back the first written cells of an n×n snapshot.
// Restore errors are dropped; the caller reports the Set failure.
func restore(out matrix.Matrix, prev []float64, n, written int) {
	for idx := 0; idx < written; idx++ {
		_ = out.Set(idx/n, idx%n, prev[idx])
	}
}
