// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matinv/matrix"
)

// ErrSingular is returned under WithStrictSingular when a pivot column has no
// entry above the tolerance at or below the diagonal.
var ErrSingular = errors.New("gaussjordan: matrix is singular")

// ErrNonFiniteResult is returned under WithFiniteResult when the inverse
// contains NaN or ±Inf. It also matches matrix.ErrNaNInf.
var ErrNonFiniteResult = fmt.Errorf("gaussjordan: inverse is not finite: %w", matrix.ErrNaNInf)

// Operation tags for error wrapping.
const (
	opInvert  = "Invert"
	opInverse = "Inverse"
)

// gjErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func gjErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
