package gaussjordan_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matinv/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so type switches on *matrix.Dense miss and the
// generic At/Set paths run.
type hide struct{ matrix.Matrix }

// fromRows builds a Dense from a literal or fails the test.
func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// filled returns an n×n Dense with every cell set to v.
func filled(t testing.TB, n int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// wellConditioned returns MᵀM + n·I for a seeded U(-1,1) matrix M.
// The shift keeps the smallest eigenvalue >= n, so the condition number
// stays small for the orders used in tests.
func wellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	pd, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	shift, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	shifted, err := matrix.Scale(shift, float64(n))
	require.NoError(t, err)
	a, err := matrix.Add(pd, shifted)
	require.NoError(t, err)

	return a.(*matrix.Dense)
}

// requireClose asserts max|want-got| <= tol.
func requireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqualf(t, d, tol, "max abs diff %g > %g", d, tol)
}

// requireIdentity asserts m ≈ I within tol.
func requireIdentity(t testing.TB, m matrix.Matrix, tol float64) {
	t.Helper()
	id, err := matrix.NewIdentity(m.Rows())
	require.NoError(t, err)
	requireClose(t, id, m, tol)
}

// requireAllFinite asserts no NaN/Inf in m.
func requireAllFinite(t testing.TB, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "(%d,%d) = %v", i, j, v)
		}
	}
}
