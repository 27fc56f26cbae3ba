// SPDX-License-Identifier: MIT

package distdense

import (
	"errors"

	"github.com/savrin-dev/matdispatch/kernel"
)

var (
	// ErrInvalidDimensions indicates negative matrix dimensions.
	ErrInvalidDimensions = errors.New("distdense: dimensions must be >= 0")

	// ErrBadShardCount indicates a non-positive shard count.
	ErrBadShardCount = errors.New("distdense: shard count must be > 0")

	// ErrBadDataLength indicates WithData backing whose length does not
	// equal rows*cols.
	ErrBadDataLength = errors.New("distdense: data length must equal rows*cols")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("distdense: index out of bounds")
)

// Kernel status codes, disjoint from the localdense range so a
// *dispatch.KernelError pinpoints which layer failed.
const (
	// StatusBadOperand: an operand is not a distdense matrix.
	StatusBadOperand kernel.Status = iota + 64
	// StatusScatterShape: a scatter received a matrix whose dimensions
	// cannot be repartitioned (internal invariant violation).
	StatusScatterShape
)
