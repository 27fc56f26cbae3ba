// SPDX-License-Identifier: MIT
// Package dispatch: callback signature pinning for the fill/map family.
//
// The callback's signature is pinned to the resolved datatype tag here,
// once per call, before the kernel is resolved — kernels then assert the
// already-verified type a single time and invoke it directly per element,
// avoiding any per-element dispatch.

package dispatch

import "github.com/savrin-dev/matdispatch/tag"

// checkEntrywiseFill verifies cb is func() T for the element type of d.
func checkEntrywiseFill(d tag.Datatype, cb any) error {
	if cb == nil {
		return ErrInvalidArgument
	}
	var ok bool
	switch d {
	case tag.Integer32:
		_, ok = cb.(func() int32)
	case tag.Real32:
		_, ok = cb.(func() float32)
	case tag.Real64:
		_, ok = cb.(func() float64)
	case tag.Complex64:
		_, ok = cb.(func() complex64)
	case tag.Complex128:
		_, ok = cb.(func() complex128)
	}
	if !ok {
		return ErrDatatypeMismatch
	}

	return nil
}

// checkEntrywiseMap verifies cb is func(T) T for the element type of d.
func checkEntrywiseMap(d tag.Datatype, cb any) error {
	if cb == nil {
		return ErrInvalidArgument
	}
	var ok bool
	switch d {
	case tag.Integer32:
		_, ok = cb.(func(int32) int32)
	case tag.Real32:
		_, ok = cb.(func(float32) float32)
	case tag.Real64:
		_, ok = cb.(func(float64) float64)
	case tag.Complex64:
		_, ok = cb.(func(complex64) complex64)
	case tag.Complex128:
		_, ok = cb.(func(complex128) complex128)
	}
	if !ok {
		return ErrDatatypeMismatch
	}

	return nil
}

// checkIndexFill verifies cb is func(i, j int) T for the element type of d.
func checkIndexFill(d tag.Datatype, cb any) error {
	if cb == nil {
		return ErrInvalidArgument
	}
	var ok bool
	switch d {
	case tag.Integer32:
		_, ok = cb.(func(int, int) int32)
	case tag.Real32:
		_, ok = cb.(func(int, int) float32)
	case tag.Real64:
		_, ok = cb.(func(int, int) float64)
	case tag.Complex64:
		_, ok = cb.(func(int, int) complex64)
	case tag.Complex128:
		_, ok = cb.(func(int, int) complex128)
	}
	if !ok {
		return ErrDatatypeMismatch
	}

	return nil
}

// checkIndexMap verifies cb is func(i, j int, v T) T for the element type
// of d.
func checkIndexMap(d tag.Datatype, cb any) error {
	if cb == nil {
		return ErrInvalidArgument
	}
	var ok bool
	switch d {
	case tag.Integer32:
		_, ok = cb.(func(int, int, int32) int32)
	case tag.Real32:
		_, ok = cb.(func(int, int, float32) float32)
	case tag.Real64:
		_, ok = cb.(func(int, int, float64) float64)
	case tag.Complex64:
		_, ok = cb.(func(int, int, complex64) complex64)
	case tag.Complex128:
		_, ok = cb.(func(int, int, complex128) complex128)
	}
	if !ok {
		return ErrDatatypeMismatch
	}

	return nil
}
