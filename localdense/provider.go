// SPDX-License-Identifier: MIT
// Package localdense: the registration matrix. NewTable seals every
// kernel for the Local storage kind:
//   - registerCommon: the operations every tag supports.
//   - registerOrdered: plain Max/Min searches, ordered tags only.
//   - registerField: division- and norm-based kernels, every tag except
//     Integer32.
//   - registerComplex: conjugation variants plus the complex-only
//     operations.
//
// Real/imaginary part kernels are registered per tag because their
// destination type is the base of the source tag.

package localdense

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// registrar accumulates the first registration error so the matrix below
// stays free of per-line error plumbing.
type registrar struct {
	b   *kernel.Builder
	err error
}

func (r *registrar) add(op kernel.Op, d tag.Datatype, v kernel.Variant, shape kernel.Shape, fn any) {
	if r.err != nil {
		return
	}
	r.err = r.b.Register(kernel.Key{Op: op, Dtype: d, Storage: tag.Local, Variant: v}, shape, fn)
}

// registerCommon wires the operations every datatype tag supports.
func registerCommon[T Element](r *registrar, tr traits[T]) {
	d := tr.dtype
	none := kernel.VariantNone

	r.add(kernel.OpZero, d, none, kernel.ShapeInPlace, zeroKernel[T]())
	r.add(kernel.OpFill, d, none, kernel.ShapeInPlace, fillKernel[T]())
	r.add(kernel.OpScale, d, none, kernel.ShapeInPlace, scaleKernel[T]())
	r.add(kernel.OpScaleTrapezoid, d, none, kernel.ShapeInPlace, scaleTrapezoidKernel[T]())
	r.add(kernel.OpSetDiagonal, d, none, kernel.ShapeInPlace, setDiagonalKernel[T]())
	r.add(kernel.OpUpdateDiagonal, d, none, kernel.ShapeInPlace, updateDiagonalKernel[T]())
	r.add(kernel.OpRowSwap, d, none, kernel.ShapeInPlace, rowSwapKernel[T]())
	r.add(kernel.OpColSwap, d, none, kernel.ShapeInPlace, colSwapKernel[T]())
	r.add(kernel.OpSymmetricSwap, d, none, kernel.ShapeInPlace, symmetricSwapKernel[T]())
	r.add(kernel.OpMakeSymmetric, d, none, kernel.ShapeInPlace, makeSymmetricKernel(tr.conj, false))
	r.add(kernel.OpMakeTrapezoidal, d, none, kernel.ShapeInPlace, makeTrapezoidalKernel[T]())
	r.add(kernel.OpMakeTriangular, d, none, kernel.ShapeInPlace, makeTrapezoidalKernel[T]())

	r.add(kernel.OpAxpy, d, none, kernel.ShapeElementwise, axpyKernel[T]())
	r.add(kernel.OpAxpyTriangle, d, none, kernel.ShapeElementwise, axpyTriangleKernel[T]())
	r.add(kernel.OpCopy, d, none, kernel.ShapeElementwise, copyKernel[T]())
	r.add(kernel.OpHadamard, d, none, kernel.ShapeElementwise, hadamardKernel[T]())
	r.add(kernel.OpDiagonalScale, d, none, kernel.ShapeElementwise, diagonalScaleKernel(tr.conj, false))
	r.add(kernel.OpDiagonalScaleTrap, d, none, kernel.ShapeElementwise, diagonalScaleKernel(tr.conj, true))
	r.add(kernel.OpSwap, d, none, kernel.ShapeElementwise, swapKernel(tr.conj))
	r.add(kernel.OpTranspose, d, none, kernel.ShapeElementwise, transposeKernel(tr.conj, false))

	r.add(kernel.OpDot, d, none, kernel.ShapeReduce, innerProductKernel(tr.conj, true))
	r.add(kernel.OpHilbertSchmidt, d, none, kernel.ShapeReduce, innerProductKernel(tr.conj, true))

	r.add(kernel.OpMaxAbs, d, none, kernel.ShapeExtremum, absSearch(regionFull, tr.abs2, tr.absOut, true))
	r.add(kernel.OpMinAbs, d, none, kernel.ShapeExtremum, absSearch(regionFull, tr.abs2, tr.absOut, false))
	r.add(kernel.OpVectorMaxAbs, d, none, kernel.ShapeExtremum, absSearch(regionVector, tr.abs2, tr.absOut, true))
	r.add(kernel.OpVectorMinAbs, d, none, kernel.ShapeExtremum, absSearch(regionVector, tr.abs2, tr.absOut, false))
	r.add(kernel.OpSymmetricMaxAbs, d, none, kernel.ShapeExtremum, absSearch(regionTriangle, tr.abs2, tr.absOut, true))
	r.add(kernel.OpSymmetricMinAbs, d, none, kernel.ShapeExtremum, absSearch(regionTriangle, tr.abs2, tr.absOut, false))

	r.add(kernel.OpEntrywiseFill, d, none, kernel.ShapeFillMap, entrywiseFillKernel[T]())
	r.add(kernel.OpEntrywiseMap, d, none, kernel.ShapeFillMap, entrywiseMapKernel[T]())
	r.add(kernel.OpIndexFill, d, none, kernel.ShapeFillMap, indexFillKernel[T]())
	r.add(kernel.OpIndexMap, d, none, kernel.ShapeFillMap, indexMapKernel[T]())
}

// registerOrdered wires the plain extremum searches; ordering exists for
// the real and integer tags only.
func registerOrdered[T Element](r *registrar, tr traits[T]) {
	d := tr.dtype
	none := kernel.VariantNone

	r.add(kernel.OpMax, d, none, kernel.ShapeExtremum, orderedSearch(regionFull, tr.less, true))
	r.add(kernel.OpMin, d, none, kernel.ShapeExtremum, orderedSearch(regionFull, tr.less, false))
	r.add(kernel.OpVectorMax, d, none, kernel.ShapeExtremum, orderedSearch(regionVector, tr.less, true))
	r.add(kernel.OpVectorMin, d, none, kernel.ShapeExtremum, orderedSearch(regionVector, tr.less, false))
	r.add(kernel.OpSymmetricMax, d, none, kernel.ShapeExtremum, orderedSearch(regionTriangle, tr.less, true))
	r.add(kernel.OpSymmetricMin, d, none, kernel.ShapeExtremum, orderedSearch(regionTriangle, tr.less, false))
}

// registerField wires the kernels needing exact division or a norm;
// Integer32 is excluded from both.
func registerField[T Element](r *registrar, tr traits[T]) {
	d := tr.dtype
	none := kernel.VariantNone

	r.add(kernel.OpDiagonalSolve, d, none, kernel.ShapeElementwise, diagonalSolveKernel(tr.conj, tr.isZero))
	r.add(kernel.OpNrm2, d, none, kernel.ShapeReduce, nrm2Kernel(tr.abs2, tr.normOut))
}

// registerComplex wires conjugation-variant and complex-only kernels.
// realOf maps an entry onto its real axis.
func registerComplex[T Element](r *registrar, tr traits[T], realOf func(T) T) {
	d := tr.dtype

	r.add(kernel.OpConjugate, d, kernel.VariantNone, kernel.ShapeInPlace, conjugateKernel(tr.conj))
	r.add(kernel.OpMakeReal, d, kernel.VariantNone, kernel.ShapeInPlace, makeRealKernel(realOf))
	r.add(kernel.OpDotu, d, kernel.VariantNone, kernel.ShapeReduce, innerProductKernel(tr.conj, false))
	r.add(kernel.OpMakeSymmetric, d, kernel.VariantConjugated, kernel.ShapeInPlace, makeSymmetricKernel(tr.conj, true))
	r.add(kernel.OpTranspose, d, kernel.VariantConjugated, kernel.ShapeElementwise, transposeKernel(tr.conj, true))
}

// registerParts wires the real/imaginary extractors. The destination tag
// is the base of the source tag, so each pairing is spelled out.
func registerParts(r *registrar) {
	none := kernel.VariantNone
	ew := kernel.ShapeElementwise

	r.add(kernel.OpRealPart, tag.Real32, none, ew,
		partKernel(func(v float32) float32 { return v }))
	r.add(kernel.OpImagPart, tag.Real32, none, ew,
		partKernel(func(float32) float32 { return 0 }))
	r.add(kernel.OpRealPart, tag.Real64, none, ew,
		partKernel(func(v float64) float64 { return v }))
	r.add(kernel.OpImagPart, tag.Real64, none, ew,
		partKernel(func(float64) float64 { return 0 }))
	r.add(kernel.OpRealPart, tag.Complex64, none, ew,
		partKernel(func(v complex64) float32 { return real(v) }))
	r.add(kernel.OpImagPart, tag.Complex64, none, ew,
		partKernel(func(v complex64) float32 { return imag(v) }))
	r.add(kernel.OpRealPart, tag.Complex128, none, ew,
		partKernel(func(v complex128) float64 { return real(v) }))
	r.add(kernel.OpImagPart, tag.Complex128, none, ew,
		partKernel(func(v complex128) float64 { return imag(v) }))
}

// NewTable builds and seals the complete Local kernel table.
// Complexity: O(1) per registration; the table is immutable afterwards.
func NewTable() (*kernel.Table, error) {
	r := &registrar{b: kernel.NewBuilder()}

	i32 := int32Traits()
	r32 := real32Traits()
	r64 := real64Traits()
	c64 := complex64Traits()
	c128 := complex128Traits()

	registerCommon(r, i32)
	registerCommon(r, r32)
	registerCommon(r, r64)
	registerCommon(r, c64)
	registerCommon(r, c128)

	registerOrdered(r, i32)
	registerOrdered(r, r32)
	registerOrdered(r, r64)

	registerField(r, r32)
	registerField(r, r64)
	registerField(r, c64)
	registerField(r, c128)

	registerComplex(r, c64, func(v complex64) complex64 { return complex(real(v), 0) })
	registerComplex(r, c128, func(v complex128) complex128 { return complex(real(v), 0) })

	registerParts(r)

	if r.err != nil {
		return nil, r.err
	}

	return r.b.Build(), nil
}

// MustTable is NewTable panicking on registration failure; the matrix
// above is static, so failure is a programming error.
func MustTable() *kernel.Table {
	t, err := NewTable()
	if err != nil {
		panic(err)
	}

	return t
}
