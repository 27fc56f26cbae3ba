// SPDX-License-Identifier: MIT
// Package tag: Datatype and Storage enumerations.
//
// Purpose:
//   - Single source of truth for the element-datatype and storage-kind
//     discriminators used in kernel keys.
//   - Keep the Base relation (complex → underlying real) in exactly one place.

package tag

// Datatype identifies the element type of a matrix operand.
// The five values mirror the suffix set of the wrapped kernel families:
// integer, single/double real, single/double complex.
type Datatype uint8

const (
	// Integer32 is a 32-bit signed integer element.
	Integer32 Datatype = iota
	// Real32 is a single-precision real element.
	Real32
	// Real64 is a double-precision real element.
	Real64
	// Complex64 is a single-precision complex element (two float32 parts).
	Complex64
	// Complex128 is a double-precision complex element (two float64 parts).
	Complex128

	numDatatypes // sentinel for Valid; keep last
)

// Valid reports whether d is one of the declared datatype tags.
// Complexity: O(1).
func (d Datatype) Valid() bool { return d < numDatatypes }

// IsComplex reports whether d is a complex tag.
// Complexity: O(1).
func (d Datatype) IsComplex() bool { return d == Complex64 || d == Complex128 }

// Base returns the real datatype underlying a complex tag, and d itself
// for integer/real tags. Base(Complex64)=Real32, Base(Complex128)=Real64.
// Complexity: O(1).
func (d Datatype) Base() Datatype {
	switch d {
	case Complex64:
		return Real32
	case Complex128:
		return Real64
	default:
		return d
	}
}

// Size returns the element width in bytes, or 0 for an invalid tag.
// Complexity: O(1).
func (d Datatype) Size() int {
	switch d {
	case Integer32, Real32:
		return 4
	case Real64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (d Datatype) String() string {
	switch d {
	case Integer32:
		return "int32"
	case Real32:
		return "real32"
	case Real64:
		return "real64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "datatype(invalid)"
	}
}

// Storage identifies whether an operand lives entirely in one process or
// is partitioned across a process grid.
type Storage uint8

const (
	// Local is a single-process dense matrix.
	Local Storage = iota
	// Distributed is a dense matrix partitioned across a process grid.
	Distributed

	numStorages // sentinel for Valid; keep last
)

// Valid reports whether s is one of the declared storage kinds.
// Complexity: O(1).
func (s Storage) Valid() bool { return s < numStorages }

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case Local:
		return "local"
	case Distributed:
		return "distributed"
	default:
		return "storage(invalid)"
	}
}
