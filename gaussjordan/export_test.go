package gaussjordan

import "github.com/katalvlaran/matinv/matrix"

// Test-Bridge (White-Box) for the private elimination kernels.
// Compiled only into this package's tests.

// PanicToleranceInvalid_TestOnly exposes the option panic message.
const PanicToleranceInvalid_TestOnly = panicToleranceInvalid

// PanicAllocatorNil_TestOnly exposes the option panic message.
const PanicAllocatorNil_TestOnly = panicAllocatorNil

// newWorkspaceFromRows builds a workspace whose rows are copies of aug.
func newWorkspaceFromRows(aug [][]float64, alloc matrix.Allocator) (*workspace, error) {
	n := len(aug)
	w := &workspace{n: n, stride: len(aug[0]), alloc: alloc}
	w.data = make([]float64, n*w.stride)
	for i := range aug {
		copy(w.row(i), aug[i])
	}

	return w, nil
}

func rowsOf(w *workspace) [][]float64 {
	out := make([][]float64, w.n)
	for i := range out {
		out[i] = append([]float64(nil), w.row(i)...)
	}

	return out
}

// Reduce_TestOnly runs reduce over an augmented-row literal (N rows × 2N cols).
func Reduce_TestOnly(aug [][]float64, opts ...Option) ([][]float64, Result, error) {
	o := gatherOptions(opts...)
	w, _ := newWorkspaceFromRows(aug, o.alloc)
	res := Result{Order: len(aug)}
	err := reduce(w, &o, &res)

	return rowsOf(w), res, err
}

// FindAndSwap_TestOnly runs findAndSwap for pivot p over an augmented-row literal.
func FindAndSwap_TestOnly(aug [][]float64, p int, tol float64, alloc matrix.Allocator) ([][]float64, int, bool, error) {
	w, _ := newWorkspaceFromRows(aug, alloc)
	r, ok, err := findAndSwap(p, w, tol)

	return rowsOf(w), r, ok, err
}
