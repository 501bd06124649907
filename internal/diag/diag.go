// Package diag computes quality measures for a computed inverse.
package diag

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matinv/matrix"
)

// Residual returns max|A·inv - I|, the entrywise max-norm of the defect.
// A value near machine epsilon means inv is a good inverse of a.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or mismatched).
func Residual(a, inv matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err := matrix.ValidateOrder(inv, a.Rows()); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	id, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}

	return matrix.MaxAbsDiff(prod, id)
}

// Condition returns the 2-norm condition number of a. Singular input
// yields +Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Condition(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, fmt.Errorf("Condition: %w", err)
	}
	g, err := toGonum(a)
	if err != nil {
		return 0, fmt.Errorf("Condition: %w", err)
	}

	return mat.Cond(g, 2), nil
}

// toGonum copies m into a gonum dense matrix.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < r; i++ {
			row, err := d.RawRow(i)
			if err != nil {
				return nil, err
			}
			data = append(data, row...)
		}

		return mat.NewDense(r, c, data), nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(r, c, data), nil
}
