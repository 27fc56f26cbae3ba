// SPDX-License-Identifier: MIT

// Package localdense is the reference provider for the Local storage kind:
// a column-major dense matrix over the five supported element types plus a
// complete kernel table covering every operation the engine dispatches.
//
// What you get:
//   - Dense[T]: a generic column-major matrix satisfying kernel.Operand,
//     with checked At/Set access and functional-option construction.
//   - NewTable: a sealed kernel table registering the full support matrix —
//     ordered searches only for int32/float32/float64, conjugation-variant
//     kernels only for complex64/complex128, division-based kernels for
//     every tag except Integer32.
//   - Exported kernel.Status codes (StatusShapeMismatch and friends) so
//     callers can recover the concrete failure from a *dispatch.KernelError.
//
// Numeric policy:
//   - float32/complex64 arithmetic keeps 32-bit precision end to end
//     (github.com/chewxy/math32 supplies the norms and magnitudes); nothing
//     silently widens to float64 except the nrm2 accumulator.
//   - Iteration order is column-major everywhere callbacks observe it.
//
// Typical wiring:
//
//	table, _ := localdense.NewTable()
//	eng, _ := dispatch.New(table)
//	a, _ := localdense.New[float64](3, 3)
//	_ = eng.Fill(a, 1)
package localdense
