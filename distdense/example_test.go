// SPDX-License-Identifier: MIT

package distdense_test

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/dispatch"
	"github.com/savrin-dev/matdispatch/distdense"
	"github.com/savrin-dev/matdispatch/localdense"
)

// ExampleNewTable derives the combined table and runs the same operation
// against both storage kinds.
func ExampleNewTable() {
	table, _ := distdense.NewTable(localdense.MustTable())
	eng, _ := dispatch.New(table)

	d, _ := distdense.New(4, 1,
		distdense.WithShards[float64](2),
		distdense.WithData([]float64{1, 2, 3, 4}))
	l, _ := localdense.New(4, 1, localdense.WithData([]float64{1, 2, 3, 4}))

	_ = eng.Scale(10, d)
	_ = eng.Scale(10, l)

	fmt.Println("distributed:", d.Gather().Data())
	fmt.Println("local:      ", l.Data())

	// Output:
	// distributed: [10 20 30 40]
	// local:       [10 20 30 40]
}
