// SPDX-License-Identifier: MIT

package distdense

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/localdense"
	"github.com/savrin-dev/matdispatch/tag"
)

// DefaultShards is the shard count New uses unless WithShards overrides
// it. Fixed rather than NumCPU-derived so results and shard layouts are
// reproducible across machines.
const DefaultShards = 4

// Matrix is a rows×cols matrix split into contiguous row blocks. Shard k
// holds rows [offset(k), offset(k)+shardRows(k)) at full width. The block
// heights differ by at most one.
type Matrix[T localdense.Element] struct {
	rows, cols int
	shards     []*localdense.Dense[T]
	offsets    []int // global row of each shard's first row
}

// Option mutates a freshly allocated Matrix during New.
type Option[T localdense.Element] func(*config[T]) error

type config[T localdense.Element] struct {
	shards int
	data   []T
}

// WithShards sets the shard count. n must be positive.
func WithShards[T localdense.Element](n int) Option[T] {
	return func(c *config[T]) error {
		if n <= 0 {
			return ErrBadShardCount
		}
		c.shards = n

		return nil
	}
}

// WithData copies a column-major backing slice into the matrix.
func WithData[T localdense.Element](data []T) Option[T] {
	return func(c *config[T]) error {
		c.data = data

		return nil
	}
}

// New creates a rows×cols distributed matrix of zeros.
// Stage 1 (Validate): dimensions and options.
// Stage 2 (Partition): split rows into near-equal contiguous blocks.
// Stage 3 (Populate): scatter WithData when present.
// Complexity: O(rows*cols).
func New[T localdense.Element](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	c := config[T]{shards: DefaultShards}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if c.data != nil && len(c.data) != rows*cols {
		return nil, ErrBadDataLength
	}

	m := &Matrix[T]{}
	if err := m.partition(rows, cols, c.shards); err != nil {
		return nil, err
	}
	if c.data != nil {
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				if err := m.Set(i, j, c.data[j*rows+i]); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// FromDense distributes a local matrix.
func FromDense[T localdense.Element](d *localdense.Dense[T], opts ...Option[T]) (*Matrix[T], error) {
	return New(d.Rows(), d.Cols(), append(opts, WithData[T](d.Data()))...)
}

// partition rebuilds the shard layout for the given global shape, keeping
// the shard count.
func (m *Matrix[T]) partition(rows, cols, shards int) error {
	base, rem := rows/shards, rows%shards
	m.rows, m.cols = rows, cols
	m.shards = make([]*localdense.Dense[T], shards)
	m.offsets = make([]int, shards)
	offset := 0
	for k := range m.shards {
		h := base
		if k < rem {
			h++
		}
		sh, err := localdense.New[T](h, cols)
		if err != nil {
			return err
		}
		m.shards[k] = sh
		m.offsets[k] = offset
		offset += h
	}

	return nil
}

// Rows returns the global row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the global column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// NumShards returns the shard count. Complexity: O(1).
func (m *Matrix[T]) NumShards() int { return len(m.shards) }

// locate maps a global row to its shard and shard-local row.
func (m *Matrix[T]) locate(i int) (k, li int) {
	// Shard count is small; a linear scan beats bookkeeping.
	k = len(m.offsets) - 1
	for ; k > 0; k-- {
		if m.offsets[k] <= i {
			break
		}
	}

	return k, i - m.offsets[k]
}

// At returns entry (i, j) with bounds checking.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	k, li := m.locate(i)

	return m.shards[k].At(li, j)
}

// Set writes entry (i, j) with bounds checking.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	k, li := m.locate(i)

	return m.shards[k].Set(li, j, v)
}

// Gather assembles the shards into one local matrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Gather() *localdense.Dense[T] {
	out, _ := localdense.New[T](m.rows, m.cols)
	data := out.Data()
	for k, sh := range m.shards {
		sd := sh.Data()
		h := sh.Rows()
		for j := 0; j < m.cols; j++ {
			copy(data[j*m.rows+m.offsets[k]:j*m.rows+m.offsets[k]+h], sd[j*h:(j+1)*h])
		}
	}

	return out
}

// Datatype implements kernel.Operand.
func (m *Matrix[T]) Datatype() tag.Datatype { return m.shards[0].Datatype() }

// Storage implements kernel.Operand.
func (m *Matrix[T]) Storage() tag.Storage { return tag.Distributed }

// Native implements kernel.Operand.
func (m *Matrix[T]) Native() any { return m }

// gatherer and sharded are the untyped doors the derived kernels use;
// implementing them on Matrix keeps the wrappers free of type switches.
type gatherer interface {
	gatherLocal() kernel.Operand
	scatterLocal(kernel.Operand) kernel.Status
}

type sharded interface {
	numShards() int
	shardOperand(k int) kernel.Operand
	heights() []int
}

func (m *Matrix[T]) gatherLocal() kernel.Operand { return m.Gather() }

// scatterLocal writes a (possibly resized) local result back into the
// shards, repartitioning when the kernel changed the global shape.
func (m *Matrix[T]) scatterLocal(loc kernel.Operand) kernel.Status {
	d, ok := loc.Native().(*localdense.Dense[T])
	if !ok {
		return StatusBadOperand
	}
	if d.Rows() != m.rows || d.Cols() != m.cols {
		if err := m.partition(d.Rows(), d.Cols(), len(m.shards)); err != nil {
			return StatusScatterShape
		}
	}
	data := d.Data()
	for k, sh := range m.shards {
		sd := sh.Data()
		h := sh.Rows()
		for j := 0; j < m.cols; j++ {
			copy(sd[j*h:(j+1)*h], data[j*m.rows+m.offsets[k]:j*m.rows+m.offsets[k]+h])
		}
	}

	return kernel.OK
}

func (m *Matrix[T]) numShards() int { return len(m.shards) }

func (m *Matrix[T]) shardOperand(k int) kernel.Operand { return m.shards[k] }

// heights reports the per-shard row counts; two matrices with equal
// heights partition their rows identically.
func (m *Matrix[T]) heights() []int {
	hs := make([]int, len(m.shards))
	for k, sh := range m.shards {
		hs[k] = sh.Rows()
	}

	return hs
}
