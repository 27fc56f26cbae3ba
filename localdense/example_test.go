// SPDX-License-Identifier: MIT

package localdense_test

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/dispatch"
	"github.com/savrin-dev/matdispatch/localdense"
	"github.com/savrin-dev/matdispatch/tag"
)

// ExampleNewTable wires the Local provider into an engine and runs a few
// operations end to end.
func ExampleNewTable() {
	eng, _ := dispatch.New(localdense.MustTable())

	// 1)2×2 symmetric matrix from the lower triangle.
	a, _ := localdense.New(2, 2, localdense.WithData([]float64{1, 2, 0, 3}))
	_ = eng.MakeSymmetric(tag.Lower, a, false)
	fmt.Println("a =", a.Data())

	// 2) y += 10*x over a pair of vectors.
	x, _ := localdense.New(2, 1, localdense.WithData([]float64{1, 2}))
	y, _ := localdense.New(2, 1, localdense.WithData([]float64{5, 5}))
	_ = eng.Axpy(10, x, y)
	fmt.Println("y =", y.Data())

	// 3) Norm and largest magnitude.
	nrm, _ := eng.Nrm2(x)
	fmt.Println("nrm2 =", nrm)
	best, _ := eng.MaxAbs(a)
	fmt.Printf("maxabs = %v at (%d,%d)\n", best.Value, best.Row, best.Col)

	// Output:
	// a = [1 2 2 3]
	// y = [15 25]
	// nrm2 = 2.23606797749979
	// maxabs = 3 at (1,1)
}

// ExampleNew shows the callback signature pinning: the function type
// must match the operand's datatype.
func ExampleNew() {
	eng, _ := dispatch.New(localdense.MustTable())

	a, _ := localdense.New[int32](2, 2)
	var n int32
	_ = eng.EntrywiseFill(a, func() int32 { n++; return n })
	fmt.Println("column-major:", a.Data())

	err := eng.EntrywiseFill(a, func() float64 { return 0 })
	fmt.Println("mismatch:", err != nil)

	// Output:
	// column-major: [1 2 3 4]
	// mismatch: true
}
