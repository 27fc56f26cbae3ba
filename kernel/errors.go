// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set (registry side).
// All sentinels are prefixed "kernel: ..." and matched via errors.Is.
// Dispatch-time errors (type/datatype mismatch, kernel failure) live in the
// dispatch package; this file covers registration and resolution only.

package kernel

import "errors"

var (
	// ErrUnsupportedCombination is returned by Table.Resolve when no kernel
	// is registered under the requested (op, datatype, storage, variant)
	// key. Intentionally unregistered combinations (e.g. a norm over an
	// integer tag) surface through this sentinel rather than a no-op.
	ErrUnsupportedCombination = errors.New("kernel: unsupported combination")

	// ErrDuplicateKernel indicates a second registration under a key that
	// already has an entry. The invariant is at most one kernel per key.
	ErrDuplicateKernel = errors.New("kernel: duplicate registration")

	// ErrNilKernel indicates a nil callable passed to Register.
	ErrNilKernel = errors.New("kernel: nil kernel func")

	// ErrShapeMismatch indicates a callable whose type does not match the
	// declared call shape.
	ErrShapeMismatch = errors.New("kernel: func does not match call shape")

	// ErrBadKey indicates a key with an invalid op, datatype or storage.
	ErrBadKey = errors.New("kernel: invalid key")

	// ErrNilTable indicates a nil *Table handed to a consumer.
	ErrNilTable = errors.New("kernel: nil table")
)
