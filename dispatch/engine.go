// SPDX-License-Identifier: MIT
// Package dispatch: the Engine and its invocation trampolines.
//
// Purpose:
//   - Hold the sealed kernel table and expose one call per logical
//     operation (ops_*.go files), all funneling through the five shape
//     trampolines below.
//   - Keep the per-call pipeline fixed: validate -> resolve -> invoke ->
//     forward status. The trampolines are stateless per call.

package dispatch

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// Operand is re-exported so that engine callers need not import the
// kernel package for the handle contract.
type Operand = kernel.Operand

// Engine routes validated operation requests to registered kernels.
// The zero Engine is invalid; construct with New. An Engine holds no
// per-call state and is safe for concurrent use over disjoint operands.
type Engine struct {
	table *kernel.Table
}

// New wraps a sealed kernel table into an Engine.
// Returns kernel.ErrNilTable for a nil table.
// Complexity: O(1).
func New(table *kernel.Table) (*Engine, error) {
	if table == nil {
		return nil, kernel.ErrNilTable
	}

	return &Engine{table: table}, nil
}

// resolve performs the direct key lookup. No fallback, no coercion:
// a missing entry surfaces as kernel.ErrUnsupportedCombination.
func (e *Engine) resolve(op kernel.Op, d tag.Datatype, st tag.Storage, v kernel.Variant) (kernel.Entry, error) {
	return e.table.Resolve(kernel.Key{Op: op, Dtype: d, Storage: st, Variant: v})
}

// statusErr converts a kernel status into the engine's error space.
func statusErr(op kernel.Op, st kernel.Status) error {
	if st == kernel.OK {
		return nil
	}

	return &KernelError{Op: op, Status: st}
}

// entryErr marks a resolved entry whose shape does not match the
// trampoline (a provider registration bug, not a caller error).
func entryErr(op kernel.Op, want kernel.Shape) error {
	return fmt.Errorf("%s: entry is not %s: %w", op, want, kernel.ErrShapeMismatch)
}

// callInPlace runs a unary mutating kernel over a.
func (e *Engine) callInPlace(op kernel.Op, v kernel.Variant, p kernel.Params, a Operand) error {
	entry, err := e.resolve(op, a.Datatype(), a.Storage(), v)
	if err != nil {
		return err
	}
	fn, ok := entry.InPlace()
	if !ok {
		return entryErr(op, kernel.ShapeInPlace)
	}

	return statusErr(op, fn(p, a))
}

// callElementwise runs a kernel over two or three validated same-tag
// operands; the last operand is the destination.
func (e *Engine) callElementwise(op kernel.Op, v kernel.Variant, p kernel.Params, ops ...Operand) error {
	entry, err := e.resolve(op, ops[0].Datatype(), ops[0].Storage(), v)
	if err != nil {
		return err
	}
	fn, ok := entry.Elementwise()
	if !ok {
		return entryErr(op, kernel.ShapeElementwise)
	}

	return statusErr(op, fn(p, ops))
}

// callReduce runs a scalar-producing kernel. resolveOp names the table
// entry, which may differ from reportOp for documented equivalences
// (real-tag Dotu resolves to the Dot entry but reports as dotu).
func (e *Engine) callReduce(reportOp, resolveOp kernel.Op, p kernel.Params, ops ...Operand) (tag.Scalar, error) {
	entry, err := e.resolve(resolveOp, ops[0].Datatype(), ops[0].Storage(), kernel.VariantNone)
	if err != nil {
		return nil, err
	}
	fn, ok := entry.Reduce()
	if !ok {
		return nil, entryErr(reportOp, kernel.ShapeReduce)
	}
	out, st := fn(p, ops)
	if st != kernel.OK {
		return nil, statusErr(reportOp, st)
	}

	return out, nil
}

// callExtremum runs an index-producing reduction over a.
func (e *Engine) callExtremum(op kernel.Op, p kernel.Params, a Operand) (kernel.ValueResult, error) {
	entry, err := e.resolve(op, a.Datatype(), a.Storage(), kernel.VariantNone)
	if err != nil {
		return kernel.ValueResult{}, err
	}
	fn, ok := entry.Extremum()
	if !ok {
		return kernel.ValueResult{}, entryErr(op, kernel.ShapeExtremum)
	}
	out, st := fn(p, a)
	if st != kernel.OK {
		return kernel.ValueResult{}, statusErr(op, st)
	}

	return out, nil
}

// callFillMap runs a callback-driven kernel over a. The callback's dynamic
// type was verified against a's datatype by the caller (ops_fill.go)
// before this point, so kernels may assert it exactly once.
func (e *Engine) callFillMap(op kernel.Op, p kernel.Params, a Operand, cb any) error {
	entry, err := e.resolve(op, a.Datatype(), a.Storage(), kernel.VariantNone)
	if err != nil {
		return err
	}
	fn, ok := entry.FillMap()
	if !ok {
		return entryErr(op, kernel.ShapeFillMap)
	}

	return statusErr(op, fn(p, a, cb))
}

// alpha coerces a caller scalar to the operand tag, mapping a nonzero
// imaginary part against a non-complex tag to ErrDatatypeMismatch.
func alpha(op kernel.Op, d tag.Datatype, v complex128) (tag.Scalar, error) {
	s, err := d.Scalar(v)
	if err != nil {
		return nil, fmt.Errorf("%s: alpha vs %s: %w", op, d, ErrDatatypeMismatch)
	}

	return s, nil
}

// conjVariant maps the public conjugate flag to a registry variant.
// Conjugation only selects a distinct kernel for complex tags; for real
// tags symmetric ≡ Hermitian and transpose ≡ adjoint, so the flag resolves
// to the plain entry rather than being rejected or silently dropped.
func conjVariant(conjugate bool, d tag.Datatype) kernel.Variant {
	if conjugate && d.IsComplex() {
		return kernel.VariantConjugated
	}

	return kernel.VariantNone
}
