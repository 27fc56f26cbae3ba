// SPDX-License-Identifier: MIT

package kernel

// Op names one logical operation of the dispatch surface. Ops are plain
// strings so that provider tables print and diff naturally; the engine
// never synthesizes Op values outside this list.
type Op string

// Level-1 operation names. One constant per logical operation; variant
// routing (Hermitian vs symmetric, adjoint vs transpose) is expressed via
// Key.Variant, not separate ops.
const (
	OpAxpy              Op = "axpy"
	OpAxpyTriangle      Op = "axpy-triangle"
	OpConjugate         Op = "conjugate"
	OpCopy              Op = "copy"
	OpDiagonalScale     Op = "diagonal-scale"
	OpDiagonalScaleTrap Op = "diagonal-scale-trapezoid"
	OpDiagonalSolve     Op = "diagonal-solve"
	OpDot               Op = "dot"
	OpDotu              Op = "dotu"
	OpEntrywiseFill     Op = "entrywise-fill"
	OpEntrywiseMap      Op = "entrywise-map"
	OpFill              Op = "fill"
	OpHadamard          Op = "hadamard"
	OpHilbertSchmidt    Op = "hilbert-schmidt"
	OpIndexFill         Op = "index-dependent-fill"
	OpIndexMap          Op = "index-dependent-map"
	OpMakeReal          Op = "make-real"
	OpMakeSymmetric     Op = "make-symmetric"
	OpMakeTrapezoidal   Op = "make-trapezoidal"
	OpMakeTriangular    Op = "make-triangular"
	OpMax               Op = "max"
	OpMaxAbs            Op = "max-abs"
	OpMin               Op = "min"
	OpMinAbs            Op = "min-abs"
	OpNrm2              Op = "nrm2"
	OpRealPart          Op = "real-part"
	OpImagPart          Op = "imag-part"
	OpRowSwap           Op = "row-swap"
	OpColSwap           Op = "col-swap"
	OpScale             Op = "scale"
	OpScaleTrapezoid    Op = "scale-trapezoid"
	OpSetDiagonal       Op = "set-diagonal"
	OpSwap              Op = "swap"
	OpSymmetricMax      Op = "symmetric-max"
	OpSymmetricMaxAbs   Op = "symmetric-max-abs"
	OpSymmetricMin      Op = "symmetric-min"
	OpSymmetricMinAbs   Op = "symmetric-min-abs"
	OpSymmetricSwap     Op = "symmetric-swap"
	OpTranspose         Op = "transpose"
	OpUpdateDiagonal    Op = "update-diagonal"
	OpVectorMax         Op = "vector-max"
	OpVectorMaxAbs      Op = "vector-max-abs"
	OpVectorMin         Op = "vector-min"
	OpVectorMinAbs      Op = "vector-min-abs"
	OpZero              Op = "zero"
)
