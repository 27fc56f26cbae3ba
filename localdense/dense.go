// SPDX-License-Identifier: MIT

package localdense

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// Element enumerates the supported matrix element types, one per
// datatype tag.
type Element interface {
	int32 | float32 | float64 | complex64 | complex128
}

// dtypeOf maps an instantiation to its datatype tag.
func dtypeOf[T Element]() tag.Datatype {
	switch any(*new(T)).(type) {
	case int32:
		return tag.Integer32
	case float32:
		return tag.Real32
	case float64:
		return tag.Real64
	case complex64:
		return tag.Complex64
	default:
		return tag.Complex128
	}
}

// Dense is a column-major dense matrix over T. Entry (i, j) lives at
// data[j*rows+i]. The zero value is an empty 0×0 matrix; construct sized
// matrices with New.
type Dense[T Element] struct {
	rows, cols int
	data       []T // column-major backing, length rows*cols
}

// New creates a rows×cols matrix of zeros, then applies options.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): allocate column-major backing.
// Stage 3 (Finalize): apply functional options in order.
// Complexity: O(rows*cols) time and memory.
func New[T Element](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	m := &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// At returns entry (i, j) with bounds checking.
func (m *Dense[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.data[j*m.rows+i], nil
}

// Set writes entry (i, j) with bounds checking.
func (m *Dense[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	m.data[j*m.rows+i] = v

	return nil
}

// at and set are the unchecked accessors kernels use after their own
// shape validation.
func (m *Dense[T]) at(i, j int) T     { return m.data[j*m.rows+i] }
func (m *Dense[T]) set(i, j int, v T) { m.data[j*m.rows+i] = v }

// reshape resizes to rows×cols, reallocating only when the backing is too
// small. Contents are unspecified afterwards; kernels overwrite fully.
func (m *Dense[T]) reshape(rows, cols int) {
	n := rows * cols
	if cap(m.data) < n {
		m.data = make([]T, n)
	}
	m.rows, m.cols = rows, cols
	m.data = m.data[:n]
}

// Resize changes the matrix to rows×cols, preserving entries in the
// overlapping region and zero-filling any grown area.
func (m *Dense[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Resize(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}
	nd := make([]T, rows*cols)
	mr, mc := min(rows, m.rows), min(cols, m.cols)
	for j := 0; j < mc; j++ {
		copy(nd[j*rows:j*rows+mr], m.data[j*m.rows:j*m.rows+mr])
	}
	m.rows, m.cols, m.data = rows, cols, nd

	return nil
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Data exposes the column-major backing slice. Mutations alias the matrix.
func (m *Dense[T]) Data() []T { return m.data }

// isVector reports whether the matrix is a single row or single column.
func (m *Dense[T]) isVector() bool { return m.rows <= 1 || m.cols <= 1 }

// Datatype implements kernel.Operand.
func (m *Dense[T]) Datatype() tag.Datatype { return dtypeOf[T]() }

// Storage implements kernel.Operand; Dense is always Local.
func (m *Dense[T]) Storage() tag.Storage { return tag.Local }

// Native implements kernel.Operand; kernels recover the concrete matrix.
func (m *Dense[T]) Native() any { return m }

// get recovers the registered instantiation from an operand handle.
func get[T Element](o kernel.Operand) (*Dense[T], kernel.Status) {
	m, ok := o.Native().(*Dense[T])
	if !ok {
		return nil, StatusBadOperand
	}

	return m, kernel.OK
}
