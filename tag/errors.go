// SPDX-License-Identifier: MIT
// Package tag: sentinel error set.
// All sentinels are prefixed "tag: ..." and matched by callers via errors.Is.

package tag

import "errors"

var (
	// ErrUnknownDatatype indicates a Datatype value outside the declared enum.
	ErrUnknownDatatype = errors.New("tag: unknown datatype")

	// ErrUnknownStorage indicates a Storage value outside the declared enum.
	ErrUnknownStorage = errors.New("tag: unknown storage kind")

	// ErrScalarNotReal is returned when a scalar with a nonzero imaginary
	// part is coerced to an integer or real datatype.
	ErrScalarNotReal = errors.New("tag: scalar has nonzero imaginary part")
)
