// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the algebra and allocator tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matinv/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) path in code under test.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from a literal or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randDense fills an r×c matrix with values in [-1, 1) from a fixed seed.
func randDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// requireSame asserts a and b agree entrywise within tol.
func requireSame(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.LessOrEqual(t, d, tol)
}
