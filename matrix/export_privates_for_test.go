// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private limits.
//
// Purpose:
//   - Expose unexported constants to matrix_test ONLY, without widening the
//     production API. The _test.go suffix keeps this file out of normal builds.

// MaxHeapFloats_TestOnly is the largest request HeapAllocator accepts.
const MaxHeapFloats_TestOnly = maxHeapFloats
