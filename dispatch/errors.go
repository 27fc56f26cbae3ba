// SPDX-License-Identifier: MIT
// Package dispatch: sentinel error set (unified, consistent).
// This file defines the call-time error taxonomy. All public operations
// return these sentinels (possibly wrapped with operation context via %w)
// and tests check them with errors.Is. Registration/resolution sentinels
// live in the kernel package; kernel.ErrUnsupportedCombination passes
// through Engine methods unchanged.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> storage kind (TypeMismatch) -> datatype tag
// (DatatypeMismatch) -> argument/callback checks -> resolution
// (UnsupportedCombination) -> invocation (KernelFailure).

package dispatch

import (
	"errors"
	"fmt"

	"github.com/savrin-dev/matdispatch/kernel"
)

var (
	// ErrTypeMismatch indicates operands with differing storage kinds where
	// the operation requires uniformity. No kernel is attempted.
	ErrTypeMismatch = errors.New("dispatch: operand storage kinds must match")

	// ErrDatatypeMismatch indicates operands with differing datatype tags,
	// a destination tag violating the required base-type relation, or a
	// scalar/callback whose type does not fit the operand tag.
	ErrDatatypeMismatch = errors.New("dispatch: operand datatypes must match")

	// ErrKernelFailure marks a non-success status returned by an invoked
	// kernel. Matched via errors.Is; the concrete status travels in
	// KernelError and is never interpreted or retried by the engine.
	ErrKernelFailure = errors.New("dispatch: kernel failure")

	// ErrNilOperand indicates a nil operand handle.
	ErrNilOperand = errors.New("dispatch: nil operand")

	// ErrInvalidArgument indicates an out-of-range enum argument
	// (uplo/side/orientation) passed to an operation.
	ErrInvalidArgument = errors.New("dispatch: invalid argument")
)

// KernelError carries the opaque provider status of a failed kernel call.
// errors.Is(err, ErrKernelFailure) matches it; errors.As recovers the code.
type KernelError struct {
	Op     kernel.Op
	Status kernel.Status
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	return fmt.Sprintf("dispatch: %s: kernel returned status %d", e.Op, e.Status)
}

// Is matches the ErrKernelFailure sentinel.
func (e *KernelError) Is(target error) bool { return target == ErrKernelFailure }

// opErr attaches operation context to a sentinel exactly once, at the
// public boundary. Sentinels already carry the package prefix.
func opErr(op kernel.Op, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
