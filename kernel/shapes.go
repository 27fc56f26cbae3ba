// SPDX-License-Identifier: MIT
// Package kernel: call shapes and the operand/status contract.
//
// Purpose:
//   - Fix the five recurring kernel signatures in one place so that every
//     provider entry and every engine trampoline agrees on them.
//   - Keep the operand contract minimal: tags plus an opaque native handle;
//     the engine borrows operands for the duration of one call and never
//     takes ownership.

package kernel

import "github.com/savrin-dev/matdispatch/tag"

// Status is a provider return code. OK means success; any other value is
// an opaque provider-specific failure code, forwarded by the engine
// unchanged inside a dispatch.KernelError.
type Status uint32

// OK is the success sentinel shared by all providers.
const OK Status = 0

// Operand is a borrowed reference to a matrix-like value. Implementations
// carry their tag metadata and expose the provider object through Native.
// The dispatch layer never mutates an Operand itself; all mutation happens
// inside kernels.
type Operand interface {
	// Datatype reports the element tag of the operand.
	Datatype() tag.Datatype
	// Storage reports the storage kind of the operand.
	Storage() tag.Storage
	// Native returns the provider's underlying object. Reference providers
	// return the concrete matrix; cgo-backed providers would return the
	// foreign handle.
	Native() any
}

// Params carries the non-operand arguments of a call. Each operation reads
// only the fields its signature declares; the rest stay zero.
type Params struct {
	// Alpha is a scalar coefficient, already coerced to the operand tag.
	Alpha tag.Scalar
	// Uplo selects a triangle for triangle-limited operations.
	Uplo tag.Uplo
	// Side selects the application side of a diagonal factor.
	Side tag.Side
	// Orient specifies operand orientation (swap, diagonal scale/solve).
	Orient tag.Orientation
	// Offset addresses a diagonal: 0 main, >0 super-, <0 sub-diagonal.
	Offset int
	// To and From are row/column indices for the swap family.
	To, From int
}

// ValueResult is the outcome of an extremum reduction: a value plus its
// location. Matrix searches set Row and Col; vector searches set Row and
// leave Col at -1. Produced fresh per call and owned by the caller.
type ValueResult struct {
	Value tag.Scalar
	Row   int
	Col   int
}

// Shape classifies a kernel's call signature.
type Shape uint8

const (
	// ShapeInPlace mutates a single operand and returns no value.
	ShapeInPlace Shape = iota
	// ShapeElementwise mutates the last of two or three same-tag operands.
	ShapeElementwise
	// ShapeReduce folds one or two operands into a scalar.
	ShapeReduce
	// ShapeExtremum folds one operand into a ValueResult.
	ShapeExtremum
	// ShapeFillMap drives a caller-supplied per-element callback.
	ShapeFillMap
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeInPlace:
		return "in-place"
	case ShapeElementwise:
		return "elementwise"
	case ShapeReduce:
		return "reduce"
	case ShapeExtremum:
		return "extremum"
	case ShapeFillMap:
		return "fill-map"
	default:
		return "shape(invalid)"
	}
}

// The five kernel signatures. A registered callable must have exactly the
// type matching its declared Shape; Builder.Register enforces this.
type (
	// InPlaceFunc mutates a in place.
	InPlaceFunc func(p Params, a Operand) Status

	// ElementwiseFunc reads ops[0..n-2] and mutates ops[n-1]. All operands
	// were validated to share datatype and storage before invocation.
	ElementwiseFunc func(p Params, ops []Operand) Status

	// ReduceFunc folds ops into one scalar of the operation's result tag.
	ReduceFunc func(p Params, ops []Operand) (tag.Scalar, Status)

	// ExtremumFunc locates an extremum in a.
	ExtremumFunc func(p Params, a Operand) (ValueResult, Status)

	// FillMapFunc applies cb per element of a. The dynamic type of cb was
	// pinned to a's datatype before invocation (e.g. func() float64 for a
	// Real64 entrywise fill), so kernels assert it exactly once per call.
	FillMapFunc func(p Params, a Operand, cb any) Status
)
