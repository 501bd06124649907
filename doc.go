// Package matinv is a small toolkit for inverting dense square matrices with
// Gauss-Jordan elimination.
//
// 🚀 What is in the box?
//
//   - matrix/       Dense storage, validators, algebra helpers and scratch allocators
//   - gaussjordan/  the inverter: augment [A | I], eliminate, extract
//   - cmd/matinv    command line: text/CSV matrix in, inverse out
//   - cmd/matinvd   HTTP/JSON service (POST /api/v1/invert)
//
// ✨ Behavior at a glance
//
//   - Rows are swapped only when the current pivot is below the tolerance
//     (default 1e-15).
//   - A pivot no row can repair is damped to the tolerance; the result says so
//     (Result.Degenerate). WithStrictSingular turns this into ErrSingular.
//   - Scratch memory comes from a matrix.Allocator and is released on every
//     path; allocation failure surfaces as matrix.ErrOutOfMemory.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	inv, res, err := gaussjordan.Inverse(a)
package matinv
