// SPDX-License-Identifier: MIT
// Package dispatch: extremum-producing reductions.
// Plain orderings (Max/Min and their Symmetric/Vector forms) are only
// registered for the ordered tags (Integer32, Real32, Real64); requesting
// them on a complex tag resolves to kernel.ErrUnsupportedCombination since
// extremum ordering is undefined there. The Abs forms cover all five tags
// and report base-typed magnitudes.

package dispatch

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// matrixExtremum is the shared body of the whole-matrix searches.
func (e *Engine) matrixExtremum(op kernel.Op, a Operand) (kernel.ValueResult, error) {
	if err := requireOperands(a); err != nil {
		return kernel.ValueResult{}, opErr(op, err)
	}

	return e.callExtremum(op, kernel.Params{}, a)
}

// symmetricExtremum is the shared body of the triangle-limited searches.
func (e *Engine) symmetricExtremum(op kernel.Op, uplo tag.Uplo, a Operand) (kernel.ValueResult, error) {
	if !uplo.Valid() {
		return kernel.ValueResult{}, opErr(op, ErrInvalidArgument)
	}
	if err := requireOperands(a); err != nil {
		return kernel.ValueResult{}, opErr(op, err)
	}

	return e.callExtremum(op, kernel.Params{Uplo: uplo}, a)
}

// Max returns the largest entry of a and its (row, col) position.
func (e *Engine) Max(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpMax, a)
}

// Min returns the smallest entry of a and its (row, col) position.
func (e *Engine) Min(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpMin, a)
}

// MaxAbs returns the entry of largest magnitude; the value carries the
// base datatype of a's tag.
func (e *Engine) MaxAbs(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpMaxAbs, a)
}

// MinAbs returns the entry of smallest magnitude; the value carries the
// base datatype of a's tag.
func (e *Engine) MinAbs(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpMinAbs, a)
}

// SymmetricMax searches only the uplo triangle of a.
func (e *Engine) SymmetricMax(uplo tag.Uplo, a Operand) (kernel.ValueResult, error) {
	return e.symmetricExtremum(kernel.OpSymmetricMax, uplo, a)
}

// SymmetricMin searches only the uplo triangle of a.
func (e *Engine) SymmetricMin(uplo tag.Uplo, a Operand) (kernel.ValueResult, error) {
	return e.symmetricExtremum(kernel.OpSymmetricMin, uplo, a)
}

// SymmetricMaxAbs searches the uplo triangle for the largest magnitude.
func (e *Engine) SymmetricMaxAbs(uplo tag.Uplo, a Operand) (kernel.ValueResult, error) {
	return e.symmetricExtremum(kernel.OpSymmetricMaxAbs, uplo, a)
}

// SymmetricMinAbs searches the uplo triangle for the smallest magnitude.
func (e *Engine) SymmetricMinAbs(uplo tag.Uplo, a Operand) (kernel.ValueResult, error) {
	return e.symmetricExtremum(kernel.OpSymmetricMinAbs, uplo, a)
}

// VectorMax requires a width-1 or height-1 operand and returns the
// largest entry with its single zero-based index in Row (Col is -1).
func (e *Engine) VectorMax(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpVectorMax, a)
}

// VectorMin is the vector-shaped counterpart of Min.
func (e *Engine) VectorMin(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpVectorMin, a)
}

// VectorMaxAbs is the vector-shaped counterpart of MaxAbs.
func (e *Engine) VectorMaxAbs(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpVectorMaxAbs, a)
}

// VectorMinAbs is the vector-shaped counterpart of MinAbs.
func (e *Engine) VectorMinAbs(a Operand) (kernel.ValueResult, error) {
	return e.matrixExtremum(kernel.OpVectorMinAbs, a)
}
