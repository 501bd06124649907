package gaussjordan_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matinv/gaussjordan"
	"github.com/katalvlaran/matinv/matrix"
)

// ExampleInvert inverts a 2×2 matrix into a caller-allocated output.
//
//	A = [[4, 7],      A⁻¹ = [[ 0.6, -0.7],
//	     [2, 6]]             [-0.2,  0.4]]   (det = 10)
func ExampleInvert() {
	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	out, _ := matrix.NewDense(2, 2)

	res, err := gaussjordan.Invert(a, out, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range out.ToRows() {
		fmt.Printf("%.4f %.4f\n", row[0], row[1])
	}
	fmt.Println("degenerate:", res.Degenerate())
	// Output:
	// 0.6000 -0.7000
	// -0.2000 0.4000
	// degenerate: false
}

// ExampleInverse_singular shows the damped continuation and strict mode on a
// rank-1 matrix (row 2 = 2 × row 1).
func ExampleInverse_singular() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}})

	_, res, err := gaussjordan.Inverse(a)
	fmt.Println("err:", err)
	fmt.Println("damped pivots:", res.Damped)

	_, _, err = gaussjordan.Inverse(a, gaussjordan.WithStrictSingular())
	fmt.Println("strict is ErrSingular:", errors.Is(err, gaussjordan.ErrSingular))
	// Output:
	// err: <nil>
	// damped pivots: [1]
	// strict is ErrSingular: true
}

// ExampleInvert_allocator bounds scratch memory with a budget.
func ExampleInvert_allocator() {
	a, _ := matrix.NewIdentity(4)
	out, _ := matrix.NewDense(4, 4)

	tight := matrix.NewBudgetAllocator(16) // the 4×8 workspace needs 32
	_, err := gaussjordan.Invert(a, out, 4, gaussjordan.WithAllocator(tight))
	fmt.Println("out of memory:", errors.Is(err, matrix.ErrOutOfMemory))
	fmt.Println("outstanding:", tight.Outstanding())
	// Output:
	// out of memory: true
	// outstanding: 0
}
