// SPDX-License-Identifier: MIT

package localdense

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// innerProductKernel computes sum over conj(a_ij)*b_ij with conjugate
// chosen at registration: the conjugated form serves Dot and
// HilbertSchmidt, the plain form serves Dotu. Operands must share shape.
func innerProductKernel[T Element](conj func(T) T, conjugate bool) kernel.ReduceFunc {
	return func(_ kernel.Params, ops []kernel.Operand) (tag.Scalar, kernel.Status) {
		a, b, st := get2[T](ops)
		if st != kernel.OK {
			return nil, st
		}
		if a.rows != b.rows || a.cols != b.cols {
			return nil, StatusShapeMismatch
		}
		var sum T
		for i := range a.data {
			v := a.data[i]
			if conjugate {
				v = conj(v)
			}
			sum += v * b.data[i]
		}

		return sum, kernel.OK
	}
}

// nrm2Kernel computes the Frobenius norm, accumulating squared
// magnitudes in float64 and emitting the base-typed root via normOut.
func nrm2Kernel[T Element](abs2 func(T) float64, normOut func(float64) tag.Scalar) kernel.ReduceFunc {
	return func(_ kernel.Params, ops []kernel.Operand) (tag.Scalar, kernel.Status) {
		a, st := get[T](ops[0])
		if st != kernel.OK {
			return nil, st
		}
		var sum float64
		for _, v := range a.data {
			sum += abs2(v)
		}

		return normOut(sum), kernel.OK
	}
}
