// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage and helper kernels used by the
// Gauss-Jordan inverter.
//
// The matrix package provides:
//
//   - Matrix, the minimal interface (Rows, Cols, At, Set, Clone) every
//     kernel accepts.
//   - Dense, a row-major implementation over one flat []float64 buffer
//     indexed as row*cols + col, with bounds-checked accessors.
//   - Validators (nil, square, same shape, finite) returning sentinel errors.
//   - Add, Mul, Transpose, Scale, MaxAbsDiff and AllClose with a *Dense fast path
//     and a generic At/Set fallback.
//   - Allocator, the seam through which algorithms obtain scratch buffers.
//     HeapAllocator is the default; BudgetAllocator enforces a limit and
//     tracks outstanding floats.
//
// See the gaussjordan package for the inversion itself.
package matrix
