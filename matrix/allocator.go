// SPDX-License-Identifier: MIT

// Package matrix - scratch-buffer allocation seam.
//
// Purpose:
//   - Give algorithms a single place to obtain (and hand back) float64 work
//     buffers, so memory limits and allocation failure are testable.
//   - Make "released on every exit path" observable: BudgetAllocator counts
//     outstanding floats, and Outstanding()==0 after a call means no leak.

package matrix

import (
	"fmt"
	"math"
	"sync"
)

// maxHeapFloats caps a single HeapAllocator request so the byte size of the
// buffer cannot overflow int; larger requests yield ErrOutOfMemory.
const maxHeapFloats = math.MaxInt / 8

// Allocator hands out zeroed float64 buffers of exactly the requested length.
// Every buffer obtained from Alloc must be passed to Free exactly once.
type Allocator interface {
	Alloc(n int) ([]float64, error)
	Free(buf []float64)
}

// heapAllocator delegates to make(); Free is a no-op left to the GC.
type heapAllocator struct{}

// HeapAllocator is the default Allocator used by kernels.
var HeapAllocator Allocator = heapAllocator{}

func (heapAllocator) Alloc(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if n > maxHeapFloats {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrOutOfMemory)
	}

	return make([]float64, n), nil
}

func (heapAllocator) Free([]float64) {}

// BudgetAllocator is an Allocator with a hard ceiling on live floats.
// It is safe for concurrent use; a single budget may be shared by many calls.
type BudgetAllocator struct {
	mu     sync.Mutex
	limit  int // max live floats
	inUse  int // currently outstanding floats
	peak   int // high-water mark of inUse
	allocs int // successful Alloc calls
	failed int // rejected Alloc calls
}

// NewBudgetAllocator returns an allocator that refuses any request which
// would push live floats above limit. limit must be >= 0; a zero limit makes
// every request fail, which is how tests simulate exhaustion.
// Panics on a negative limit (programmer error).
func NewBudgetAllocator(limit int) *BudgetAllocator {
	if limit < 0 {
		panic("matrix: NewBudgetAllocator: limit must be >= 0")
	}

	return &BudgetAllocator{limit: limit}
}

// Alloc returns a zeroed buffer of n floats or ErrOutOfMemory.
// Complexity: O(n).
func (b *BudgetAllocator) Alloc(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > b.limit-b.inUse {
		b.failed++
		return nil, fmt.Errorf("Alloc(%d): %d of %d in use: %w", n, b.inUse, b.limit, ErrOutOfMemory)
	}
	b.inUse += n
	if b.inUse > b.peak {
		b.peak = b.inUse
	}
	b.allocs++

	return make([]float64, n), nil
}

// Free returns buf to the budget. Freeing nil is a no-op.
func (b *BudgetAllocator) Free(buf []float64) {
	if buf == nil {
		return
	}
	b.mu.Lock()
	b.inUse -= len(buf)
	b.mu.Unlock()
}

// Outstanding reports the floats currently allocated and not yet freed.
func (b *BudgetAllocator) Outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.inUse
}

// Peak reports the high-water mark of live floats.
func (b *BudgetAllocator) Peak() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.peak
}

// Stats reports successful and rejected Alloc calls.
func (b *BudgetAllocator) Stats() (allocs, failed int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.allocs, b.failed
}
