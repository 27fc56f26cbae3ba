// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/savrin-dev/matdispatch/kernel"
)

// EntrywiseFill sets every entry of a to fn(), invoking the callback once
// per entry in column-major order. The callback's concrete type must be
// the zero-argument producer for a's datatype (for example func() float64
// when a is tagged Real64); any other type is ErrDatatypeMismatch before
// a single entry is touched.
//
// Stage 1 (Validate): nil operand, callback presence and pinned type.
// Stage 2 (Resolve): entrywise_fill kernel for a's tag and storage.
// Stage 3 (Invoke): kernel call; nonzero status becomes *KernelError.
func (e *Engine) EntrywiseFill(a Operand, fn any) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpEntrywiseFill, err)
	}
	if err := checkEntrywiseFill(a.Datatype(), fn); err != nil {
		return opErr(kernel.OpEntrywiseFill, err)
	}

	return e.callFillMap(kernel.OpEntrywiseFill, kernel.Params{}, a, fn)
}

// EntrywiseMap replaces every entry x of a with fn(x), column-major.
// The callback must map a's datatype onto itself (func(float64) float64
// and so on).
func (e *Engine) EntrywiseMap(a Operand, fn any) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpEntrywiseMap, err)
	}
	if err := checkEntrywiseMap(a.Datatype(), fn); err != nil {
		return opErr(kernel.OpEntrywiseMap, err)
	}

	return e.callFillMap(kernel.OpEntrywiseMap, kernel.Params{}, a, fn)
}

// IndexDependentFill sets each entry (i, j) of a to fn(i, j), with i and j
// zero-based. The callback must return a's datatype.
func (e *Engine) IndexDependentFill(a Operand, fn any) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpIndexFill, err)
	}
	if err := checkIndexFill(a.Datatype(), fn); err != nil {
		return opErr(kernel.OpIndexFill, err)
	}

	return e.callFillMap(kernel.OpIndexFill, kernel.Params{}, a, fn)
}

// IndexDependentMap replaces each entry x at (i, j) with fn(i, j, x).
func (e *Engine) IndexDependentMap(a Operand, fn any) error {
	if err := requireOperands(a); err != nil {
		return opErr(kernel.OpIndexMap, err)
	}
	if err := checkIndexMap(a.Datatype(), fn); err != nil {
		return opErr(kernel.OpIndexMap, err)
	}

	return e.callFillMap(kernel.OpIndexMap, kernel.Params{}, a, fn)
}
