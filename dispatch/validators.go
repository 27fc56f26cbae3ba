// SPDX-License-Identifier: MIT
// Package dispatch: operand compatibility checks.
//
// Purpose:
//  - Provide a single, canonical source of truth for the pre-dispatch
//    checks every operation runs before touching the kernel table.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with operation context.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Checks run in the documented priority order: nil handles, storage
//    kinds, datatype tags. Validation is strictly before invocation, so a
//    failed check guarantees zero kernel calls and zero visible mutation.

package dispatch

import "github.com/savrin-dev/matdispatch/kernel"

// requireOperands rejects nil operand handles.
// Complexity: O(n) over operands.
func requireOperands(ops ...kernel.Operand) error {
	for _, o := range ops {
		if o == nil {
			return ErrNilOperand
		}
	}

	return nil
}

// requireSameStorage enforces a uniform storage kind across ops.
// Returns ErrTypeMismatch on the first divergence.
// Complexity: O(n).
func requireSameStorage(ops ...kernel.Operand) error {
	for i := 1; i < len(ops); i++ {
		if ops[i].Storage() != ops[0].Storage() {
			return ErrTypeMismatch
		}
	}

	return nil
}

// requireSameDatatype enforces a uniform datatype tag across ops.
// Returns ErrDatatypeMismatch on the first divergence. Cross-datatype
// copy/transpose is a hard restriction, never silently widened.
// Complexity: O(n).
func requireSameDatatype(ops ...kernel.Operand) error {
	for i := 1; i < len(ops); i++ {
		if ops[i].Datatype() != ops[0].Datatype() {
			return ErrDatatypeMismatch
		}
	}

	return nil
}

// requireBaseOf enforces dst's tag to be the base of src's tag
// (real-part/imaginary-part destinations).
// Complexity: O(1).
func requireBaseOf(dst, src kernel.Operand) error {
	if dst.Datatype() != src.Datatype().Base() {
		return ErrDatatypeMismatch
	}

	return nil
}

// validateUniform is the composite check for same-kind multi-operand
// operations: nil handles, then storage, then datatype, in that order.
func validateUniform(ops ...kernel.Operand) error {
	if err := requireOperands(ops...); err != nil {
		return err
	}
	if err := requireSameStorage(ops...); err != nil {
		return err
	}

	return requireSameDatatype(ops...)
}
