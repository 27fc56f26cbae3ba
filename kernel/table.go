// SPDX-License-Identifier: MIT
// Package kernel: the register-then-freeze kernel table.
//
// Purpose:
//   - Replace per-call tag branching with a single keyed lookup.
//   - Build the table once, at provider initialization, and treat it as
//     immutable afterwards (the analogue of binding native symbols at load
//     time). No mutation API exists on Table.
//
// Determinism & Performance:
//   - Registration order does not affect behavior: duplicate keys are
//     rejected, not overwritten.
//   - Resolve is a single map lookup; Tables are safe for concurrent use.

package kernel

import "fmt"

// Entry is one registered kernel: a call shape plus the matching callable.
// The zero Entry is invalid; entries only come out of a Table.
type Entry struct {
	shape Shape
	fn    any
}

// Shape reports the entry's call shape.
func (e Entry) Shape() Shape { return e.shape }

// InPlace returns the callable as an InPlaceFunc.
// The second result is false when the entry has a different shape.
func (e Entry) InPlace() (InPlaceFunc, bool) {
	fn, ok := e.fn.(InPlaceFunc)

	return fn, ok
}

// Elementwise returns the callable as an ElementwiseFunc.
func (e Entry) Elementwise() (ElementwiseFunc, bool) {
	fn, ok := e.fn.(ElementwiseFunc)

	return fn, ok
}

// Reduce returns the callable as a ReduceFunc.
func (e Entry) Reduce() (ReduceFunc, bool) {
	fn, ok := e.fn.(ReduceFunc)

	return fn, ok
}

// Extremum returns the callable as an ExtremumFunc.
func (e Entry) Extremum() (ExtremumFunc, bool) {
	fn, ok := e.fn.(ExtremumFunc)

	return fn, ok
}

// FillMap returns the callable as a FillMapFunc.
func (e Entry) FillMap() (FillMapFunc, bool) {
	fn, ok := e.fn.(FillMapFunc)

	return fn, ok
}

// Builder accumulates kernel registrations before sealing them into a
// Table. A Builder is single-goroutine; only the sealed Table is shared.
type Builder struct {
	entries map[Key]Entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[Key]Entry)}
}

// Register adds fn under key with the declared shape.
// Stage 1 (Validate): key components, non-nil fn, fn type vs shape.
// Stage 2 (Execute): insert; a pre-existing key is ErrDuplicateKernel.
// Complexity: O(1).
func (b *Builder) Register(key Key, shape Shape, fn any) error {
	if !key.valid() {
		return fmt.Errorf("kernel: register %s: %w", key, ErrBadKey)
	}
	if fn == nil {
		return fmt.Errorf("kernel: register %s: %w", key, ErrNilKernel)
	}
	if !shapeMatches(shape, fn) {
		return fmt.Errorf("kernel: register %s (%s): %w", key, shape, ErrShapeMismatch)
	}
	if _, exists := b.entries[key]; exists {
		return fmt.Errorf("kernel: register %s: %w", key, ErrDuplicateKernel)
	}

	b.entries[key] = Entry{shape: shape, fn: fn}

	return nil
}

// Build seals the accumulated registrations into an immutable Table.
// The Builder keeps no aliasing into the result and may be discarded.
// Complexity: O(n) over registered entries.
func (b *Builder) Build() *Table {
	sealed := make(map[Key]Entry, len(b.entries))
	for k, e := range b.entries {
		sealed[k] = e
	}

	return &Table{entries: sealed}
}

// shapeMatches reports whether fn's dynamic type is the signature of shape.
func shapeMatches(shape Shape, fn any) bool {
	switch shape {
	case ShapeInPlace:
		_, ok := fn.(InPlaceFunc)

		return ok
	case ShapeElementwise:
		_, ok := fn.(ElementwiseFunc)

		return ok
	case ShapeReduce:
		_, ok := fn.(ReduceFunc)

		return ok
	case ShapeExtremum:
		_, ok := fn.(ExtremumFunc)

		return ok
	case ShapeFillMap:
		_, ok := fn.(FillMapFunc)

		return ok
	default:
		return false
	}
}

// Table is the process-wide, read-only-after-init kernel registry.
// Resolution is a direct key lookup: no fallback, no coercion between
// datatypes or storages.
type Table struct {
	entries map[Key]Entry
}

// Resolve returns the entry registered under key, or an error wrapping
// ErrUnsupportedCombination naming the key.
// Complexity: O(1).
func (t *Table) Resolve(key Key) (Entry, error) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("kernel: resolve %s: %w", key, ErrUnsupportedCombination)
	}

	return e, nil
}

// Has reports whether key has a registered entry.
// Complexity: O(1).
func (t *Table) Has(key Key) bool {
	_, ok := t.entries[key]

	return ok
}

// Len reports the number of registered entries.
func (t *Table) Len() int { return len(t.entries) }

// Range calls visit for every entry until visit returns false.
// Iteration order is unspecified; Range is read-only.
func (t *Table) Range(visit func(Key, Entry) bool) {
	for k, e := range t.entries {
		if !visit(k, e) {
			return
		}
	}
}
