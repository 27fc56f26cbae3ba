// SPDX-License-Identifier: MIT
// Package dispatch: the elementwise/scaling/reduction operation surface.
// Every function here follows the same pipeline: validate operand tags,
// coerce scalars, resolve the kernel key, invoke through a trampoline.
// No numerical work happens in this file.

package dispatch

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// Axpy performs y += alpha*x inside the registered kernel.
// Stage 1 (Validate): x and y must share storage kind and datatype tag.
// Stage 2 (Prepare): coerce alpha to the operand tag.
// Stage 3 (Execute): invoke the elementwise kernel; y is the destination.
// Returns ErrTypeMismatch, ErrDatatypeMismatch,
// kernel.ErrUnsupportedCombination or ErrKernelFailure.
func (e *Engine) Axpy(alphaPre complex128, x, y Operand) error {
	if err := validateUniform(x, y); err != nil {
		return opErr(kernel.OpAxpy, err)
	}
	a, err := alpha(kernel.OpAxpy, x.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callElementwise(kernel.OpAxpy, kernel.VariantNone, kernel.Params{Alpha: a}, x, y)
}

// AxpyTriangle performs y += alpha*x restricted to the uplo triangle.
func (e *Engine) AxpyTriangle(uplo tag.Uplo, alphaPre complex128, x, y Operand) error {
	if !uplo.Valid() {
		return opErr(kernel.OpAxpyTriangle, ErrInvalidArgument)
	}
	if err := validateUniform(x, y); err != nil {
		return opErr(kernel.OpAxpyTriangle, err)
	}
	a, err := alpha(kernel.OpAxpyTriangle, x.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callElementwise(kernel.OpAxpyTriangle, kernel.VariantNone, kernel.Params{Alpha: a, Uplo: uplo}, x, y)
}

// Conjugate replaces a with its entrywise complex conjugate in place.
// Registered for complex tags only; other tags resolve to
// kernel.ErrUnsupportedCombination.
func (e *Engine) Conjugate(a Operand) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpConjugate, err)
	}

	return e.callInPlace(kernel.OpConjugate, kernel.VariantNone, kernel.Params{}, a)
}

// Copy copies a into b (b is resized by the kernel). Copying between
// datatypes is a hard restriction, never silently widened.
func (e *Engine) Copy(a, b Operand) error {
	if err := validateUniform(a, b); err != nil {
		return opErr(kernel.OpCopy, err)
	}

	return e.callElementwise(kernel.OpCopy, kernel.VariantNone, kernel.Params{}, a, b)
}

// DiagonalScale scales x by the diagonal factor d: rows when side is Left,
// columns when side is Right. For complex tags an Adjoint orientation
// conjugates the factor; for real tags orientation has no effect (the
// conjugate of a real diagonal is itself), which is the documented
// equivalence rather than an error.
func (e *Engine) DiagonalScale(side tag.Side, orient tag.Orientation, d, x Operand) error {
	if !side.Valid() || !orient.Valid() {
		return opErr(kernel.OpDiagonalScale, ErrInvalidArgument)
	}
	if err := validateUniform(d, x); err != nil {
		return opErr(kernel.OpDiagonalScale, err)
	}

	return e.callElementwise(kernel.OpDiagonalScale, kernel.VariantNone,
		kernel.Params{Side: side, Orient: orient}, d, x)
}

// DiagonalScaleTrapezoid is DiagonalScale restricted to the trapezoid
// selected by uplo and offset.
func (e *Engine) DiagonalScaleTrapezoid(side tag.Side, uplo tag.Uplo, orient tag.Orientation, d, x Operand, offset int) error {
	if !side.Valid() || !uplo.Valid() || !orient.Valid() {
		return opErr(kernel.OpDiagonalScaleTrap, ErrInvalidArgument)
	}
	if err := validateUniform(d, x); err != nil {
		return opErr(kernel.OpDiagonalScaleTrap, err)
	}

	return e.callElementwise(kernel.OpDiagonalScaleTrap, kernel.VariantNone,
		kernel.Params{Side: side, Uplo: uplo, Orient: orient, Offset: offset}, d, x)
}

// DiagonalSolve divides x by the diagonal factor d (the inverse of
// DiagonalScale). Unregistered for Integer32: exact integer division is
// undefined for the operation, so the combination resolves to
// kernel.ErrUnsupportedCombination.
func (e *Engine) DiagonalSolve(side tag.Side, orient tag.Orientation, d, x Operand) error {
	if !side.Valid() || !orient.Valid() {
		return opErr(kernel.OpDiagonalSolve, ErrInvalidArgument)
	}
	if err := validateUniform(d, x); err != nil {
		return opErr(kernel.OpDiagonalSolve, err)
	}

	return e.callElementwise(kernel.OpDiagonalSolve, kernel.VariantNone,
		kernel.Params{Side: side, Orient: orient}, d, x)
}

// Dot returns the inner product of a and b, conjugating a for complex
// tags. The result carries the operands' datatype.
func (e *Engine) Dot(a, b Operand) (tag.Scalar, error) {
	if err := validateUniform(a, b); err != nil {
		return nil, opErr(kernel.OpDot, err)
	}

	return e.callReduce(kernel.OpDot, kernel.OpDot, kernel.Params{}, a, b)
}

// Dotu returns the unconjugated inner product. For real tags conjugation
// is the identity, so the request resolves to the Dot entry — the same
// documented equivalence as real-tag MakeSymmetric with conjugation.
func (e *Engine) Dotu(a, b Operand) (tag.Scalar, error) {
	if err := validateUniform(a, b); err != nil {
		return nil, opErr(kernel.OpDotu, err)
	}
	resolveOp := kernel.OpDotu
	if !a.Datatype().IsComplex() {
		resolveOp = kernel.OpDot
	}

	return e.callReduce(kernel.OpDotu, resolveOp, kernel.Params{}, a, b)
}

// Fill sets every entry of a to alpha.
func (e *Engine) Fill(a Operand, alphaPre complex128) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpFill, err)
	}
	v, err := alpha(kernel.OpFill, a.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callInPlace(kernel.OpFill, kernel.VariantNone, kernel.Params{Alpha: v}, a)
}

// Hadamard computes the entrywise product c = a ∘ b.
func (e *Engine) Hadamard(a, b, c Operand) error {
	if err := validateUniform(a, b, c); err != nil {
		return opErr(kernel.OpHadamard, err)
	}

	return e.callElementwise(kernel.OpHadamard, kernel.VariantNone, kernel.Params{}, a, b, c)
}

// HilbertSchmidt returns the Hilbert–Schmidt inner product of a and b,
// sum over conj(a_ij)*b_ij.
func (e *Engine) HilbertSchmidt(a, b Operand) (tag.Scalar, error) {
	if err := validateUniform(a, b); err != nil {
		return nil, opErr(kernel.OpHilbertSchmidt, err)
	}

	return e.callReduce(kernel.OpHilbertSchmidt, kernel.OpHilbertSchmidt, kernel.Params{}, a, b)
}

// Nrm2 returns the Euclidean (Frobenius) norm of a. The result carries
// the base datatype of a's tag. Unregistered for Integer32.
func (e *Engine) Nrm2(a Operand) (tag.Scalar, error) {
	if err := requireOperands(a); err != nil {
		return nil, opErr(kernel.OpNrm2, err)
	}

	return e.callReduce(kernel.OpNrm2, kernel.OpNrm2, kernel.Params{}, a)
}

// Scale multiplies every entry of a by alpha in place.
func (e *Engine) Scale(alphaPre complex128, a Operand) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpScale, err)
	}
	v, err := alpha(kernel.OpScale, a.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callInPlace(kernel.OpScale, kernel.VariantNone, kernel.Params{Alpha: v}, a)
}

// ScaleTrapezoid multiplies the trapezoid selected by uplo and offset
// by alpha, leaving the rest of a untouched.
func (e *Engine) ScaleTrapezoid(alphaPre complex128, uplo tag.Uplo, a Operand, offset int) error {
	if !uplo.Valid() {
		return opErr(kernel.OpScaleTrapezoid, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpScaleTrapezoid, err)
	}
	v, err := alpha(kernel.OpScaleTrapezoid, a.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callInPlace(kernel.OpScaleTrapezoid, kernel.VariantNone,
		kernel.Params{Alpha: v, Uplo: uplo, Offset: offset}, a)
}

// SetDiagonal writes alpha along the diagonal addressed by offset.
func (e *Engine) SetDiagonal(a Operand, alphaPre complex128, offset int) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpSetDiagonal, err)
	}
	v, err := alpha(kernel.OpSetDiagonal, a.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callInPlace(kernel.OpSetDiagonal, kernel.VariantNone,
		kernel.Params{Alpha: v, Offset: offset}, a)
}

// UpdateDiagonal adds alpha along the diagonal addressed by offset.
func (e *Engine) UpdateDiagonal(a Operand, alphaPre complex128, offset int) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpUpdateDiagonal, err)
	}
	v, err := alpha(kernel.OpUpdateDiagonal, a.Datatype(), alphaPre)
	if err != nil {
		return err
	}

	return e.callInPlace(kernel.OpUpdateDiagonal, kernel.VariantNone,
		kernel.Params{Alpha: v, Offset: offset}, a)
}

// Swap exchanges the contents of x and y. Normal orientation requires
// matching shapes; Transposed/Adjoint exchange x with the (conjugate)
// transpose of y, requiring transposed shapes. Shape checks are the
// provider's, surfacing as ErrKernelFailure.
func (e *Engine) Swap(orient tag.Orientation, x, y Operand) error {
	if !orient.Valid() {
		return opErr(kernel.OpSwap, ErrInvalidArgument)
	}
	if err := validateUniform(x, y); err != nil {
		return opErr(kernel.OpSwap, err)
	}

	return e.callElementwise(kernel.OpSwap, kernel.VariantNone, kernel.Params{Orient: orient}, x, y)
}

// RowSwap exchanges rows to and from of a in place.
func (e *Engine) RowSwap(a Operand, to, from int) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpRowSwap, err)
	}

	return e.callInPlace(kernel.OpRowSwap, kernel.VariantNone, kernel.Params{To: to, From: from}, a)
}

// ColSwap exchanges columns to and from of a in place.
func (e *Engine) ColSwap(a Operand, to, from int) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpColSwap, err)
	}

	return e.callInPlace(kernel.OpColSwap, kernel.VariantNone, kernel.Params{To: to, From: from}, a)
}

// SymmetricSwap applies the two-sided symmetric permutation exchanging
// index jTo with jFrom, preserving symmetry of a.
func (e *Engine) SymmetricSwap(uplo tag.Uplo, a Operand, jTo, jFrom int) error {
	if !uplo.Valid() {
		return opErr(kernel.OpSymmetricSwap, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpSymmetricSwap, err)
	}

	return e.callInPlace(kernel.OpSymmetricSwap, kernel.VariantNone,
		kernel.Params{Uplo: uplo, To: jTo, From: jFrom}, a)
}

// Zero sets every entry of a to zero in place.
func (e *Engine) Zero(a Operand) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpZero, err)
	}

	return e.callInPlace(kernel.OpZero, kernel.VariantNone, kernel.Params{}, a)
}
