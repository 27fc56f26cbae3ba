// SPDX-License-Identifier: MIT
// Package dispatch: structural operations — symmetrization, triangle and
// trapezoid masking, transposition, real/imaginary part extraction.
// This file hosts the variant selector logic: a single public operation
// routes to one of two registered kernels on the conjugate flag, with the
// flag meaningful for complex tags only.

package dispatch

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// MakeSymmetric mirrors the uplo triangle of a onto the other, making a
// symmetric. With conjugate=true and a complex tag the Hermitian kernel
// runs instead (mirror conjugated, diagonal forced real). For real tags
// symmetric and Hermitian coincide, so conjugate=true resolves to the
// same plain entry — an explicit equivalence, not a silently ignored flag.
func (e *Engine) MakeSymmetric(uplo tag.Uplo, a Operand, conjugate bool) error {
	if !uplo.Valid() {
		return opErr(kernel.OpMakeSymmetric, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpMakeSymmetric, err)
	}

	return e.callInPlace(kernel.OpMakeSymmetric, conjVariant(conjugate, a.Datatype()),
		kernel.Params{Uplo: uplo}, a)
}

// MakeHermitian is MakeSymmetric with conjugation.
func (e *Engine) MakeHermitian(uplo tag.Uplo, a Operand) error {
	return e.MakeSymmetric(uplo, a, true)
}

// MakeReal zeroes the imaginary part of the uplo triangle of a.
// Registered for complex tags only: a non-complex operand resolves to
// kernel.ErrUnsupportedCombination instead of the original's silent no-op.
func (e *Engine) MakeReal(uplo tag.Uplo, a Operand) error {
	if !uplo.Valid() {
		return opErr(kernel.OpMakeReal, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpMakeReal, err)
	}

	return e.callInPlace(kernel.OpMakeReal, kernel.VariantNone, kernel.Params{Uplo: uplo}, a)
}

// MakeTrapezoidal zeroes every entry outside the trapezoid selected by
// uplo and offset (offset 0 keeps the main diagonal inside).
func (e *Engine) MakeTrapezoidal(uplo tag.Uplo, a Operand, offset int) error {
	if !uplo.Valid() {
		return opErr(kernel.OpMakeTrapezoidal, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpMakeTrapezoidal, err)
	}

	return e.callInPlace(kernel.OpMakeTrapezoidal, kernel.VariantNone,
		kernel.Params{Uplo: uplo, Offset: offset}, a)
}

// MakeTriangular zeroes every entry outside the uplo triangle.
func (e *Engine) MakeTriangular(uplo tag.Uplo, a Operand) error {
	if !uplo.Valid() {
		return opErr(kernel.OpMakeTriangular, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpMakeTriangular, err)
	}

	return e.callInPlace(kernel.OpMakeTriangular, kernel.VariantNone, kernel.Params{Uplo: uplo}, a)
}

// Transpose writes the transpose of a into b (b is resized by the
// kernel). With conjugate=true and a complex tag the adjoint kernel runs;
// for real tags transpose and adjoint coincide and the plain entry is
// resolved. Transposing between datatypes is a hard restriction.
func (e *Engine) Transpose(a, b Operand, conjugate bool) error {
	if err := validateUniform(a, b); err != nil {
		return opErr(kernel.OpTranspose, err)
	}

	return e.callElementwise(kernel.OpTranspose, conjVariant(conjugate, a.Datatype()),
		kernel.Params{}, a, b)
}

// Adjoint is Transpose with conjugation.
func (e *Engine) Adjoint(a, b Operand) error {
	return e.Transpose(a, b, true)
}

// RealPart writes the entrywise real part of a into aReal, whose tag must
// be the base of a's tag. Unregistered for Integer32 operands.
func (e *Engine) RealPart(a, aReal Operand) error {
	if err := requireOperands(a, aReal); err != nil {
		return opErr(kernel.OpRealPart, err)
	}
	if err := requireSameStorage(a, aReal); err != nil {
		return opErr(kernel.OpRealPart, err)
	}
	if err := requireBaseOf(aReal, a); err != nil {
		return opErr(kernel.OpRealPart, err)
	}

	return e.callElementwise(kernel.OpRealPart, kernel.VariantNone, kernel.Params{}, a, aReal)
}

// ImagPart writes the entrywise imaginary part of a into aImag, whose tag
// must be the base of a's tag. For real operands the result is zero;
// unregistered for Integer32.
func (e *Engine) ImagPart(a, aImag Operand) error {
	if err := requireOperands(a, aImag); err != nil {
		return opErr(kernel.OpImagPart, err)
	}
	if err := requireSameStorage(a, aImag); err != nil {
		return opErr(kernel.OpImagPart, err)
	}
	if err := requireBaseOf(aImag, a); err != nil {
		return opErr(kernel.OpImagPart, err)
	}

	return e.callElementwise(kernel.OpImagPart, kernel.VariantNone, kernel.Params{}, a, aImag)
}
