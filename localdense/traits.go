// SPDX-License-Identifier: MIT

package localdense

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"

	"github.com/savrin-dev/matdispatch/tag"
)

// traits bundles the per-element-type behavior the generic kernels
// cannot express with operators alone. less is nil for complex tags
// (no ordering); normOut is nil for Integer32 (no norm kernel).
type traits[T Element] struct {
	dtype tag.Datatype

	conj   func(T) T            // identity for real tags
	abs2   func(T) float64      // squared magnitude, for Abs comparisons
	absOut func(T) tag.Scalar   // base-typed |v|
	less   func(T, T) bool      // strict order, nil when undefined
	isZero func(T) bool         // exact zero test (DiagonalSolve)
	normOut func(float64) tag.Scalar // base-typed sqrt of the accumulator
}

func int32Traits() traits[int32] {
	return traits[int32]{
		dtype: tag.Integer32,
		conj:  func(v int32) int32 { return v },
		abs2:  func(v int32) float64 { f := float64(v); return f * f },
		absOut: func(v int32) tag.Scalar {
			if v < 0 {
				return -v
			}
			return v
		},
		less:   func(a, b int32) bool { return a < b },
		isZero: func(v int32) bool { return v == 0 },
	}
}

func real32Traits() traits[float32] {
	return traits[float32]{
		dtype:   tag.Real32,
		conj:    func(v float32) float32 { return v },
		abs2:    func(v float32) float64 { f := float64(v); return f * f },
		absOut:  func(v float32) tag.Scalar { return math32.Abs(v) },
		less:    func(a, b float32) bool { return a < b },
		isZero:  func(v float32) bool { return v == 0 },
		normOut: func(s float64) tag.Scalar { return math32.Sqrt(float32(s)) },
	}
}

func real64Traits() traits[float64] {
	return traits[float64]{
		dtype:   tag.Real64,
		conj:    func(v float64) float64 { return v },
		abs2:    func(v float64) float64 { return v * v },
		absOut:  func(v float64) tag.Scalar { return math.Abs(v) },
		less:    func(a, b float64) bool { return a < b },
		isZero:  func(v float64) bool { return v == 0 },
		normOut: func(s float64) tag.Scalar { return math.Sqrt(s) },
	}
}

func complex64Traits() traits[complex64] {
	return traits[complex64]{
		dtype: tag.Complex64,
		conj:  func(v complex64) complex64 { return complex(real(v), -imag(v)) },
		abs2: func(v complex64) float64 {
			re, im := float64(real(v)), float64(imag(v))
			return re*re + im*im
		},
		absOut:  func(v complex64) tag.Scalar { return math32.Hypot(real(v), imag(v)) },
		isZero:  func(v complex64) bool { return v == 0 },
		normOut: func(s float64) tag.Scalar { return math32.Sqrt(float32(s)) },
	}
}

func complex128Traits() traits[complex128] {
	return traits[complex128]{
		dtype: tag.Complex128,
		conj:  func(v complex128) complex128 { return cmplx.Conj(v) },
		abs2: func(v complex128) float64 {
			re, im := real(v), imag(v)
			return re*re + im*im
		},
		absOut:  func(v complex128) tag.Scalar { return cmplx.Abs(v) },
		isZero:  func(v complex128) bool { return v == 0 },
		normOut: func(s float64) tag.Scalar { return math.Sqrt(s) },
	}
}
