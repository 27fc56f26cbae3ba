// SPDX-License-Identifier: MIT

package localdense

import (
	"errors"

	"github.com/savrin-dev/matdispatch/kernel"
)

var (
	// ErrInvalidDimensions indicates negative matrix dimensions.
	ErrInvalidDimensions = errors.New("localdense: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("localdense: index out of bounds")

	// ErrBadDataLength indicates WithData backing whose length does not
	// equal rows*cols.
	ErrBadDataLength = errors.New("localdense: data length must equal rows*cols")
)

// Kernel status codes. The engine treats these as opaque and wraps them
// into *dispatch.KernelError; callers match on the concrete value.
const (
	// StatusBadOperand: an operand's Native handle is not the *Dense
	// instantiation the kernel was registered for.
	StatusBadOperand kernel.Status = iota + 1
	// StatusBadScalar: the alpha parameter does not carry the element type.
	StatusBadScalar
	// StatusBadCallback: the callback does not carry the pinned signature.
	StatusBadCallback
	// StatusShapeMismatch: operand dimensions are incompatible.
	StatusShapeMismatch
	// StatusNotVector: a vector-shaped operation received a matrix that is
	// neither a single row nor a single column.
	StatusNotVector
	// StatusNotSquare: a symmetric-structure operation received a
	// non-square matrix.
	StatusNotSquare
	// StatusBadIndex: a row/column/diagonal index is out of range.
	StatusBadIndex
	// StatusEmpty: an extremum search over zero entries.
	StatusEmpty
	// StatusSingular: DiagonalSolve met a zero diagonal entry.
	StatusSingular
)
