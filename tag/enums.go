// SPDX-License-Identifier: MIT
// Package tag: positional enums shared by the operation surface.
// Byte constants follow the BLAS character convention so that values print
// naturally and never collide when forwarded to native providers.

package tag

// Uplo selects the upper or lower triangle of a matrix.
type Uplo byte

const (
	// Lower selects the lower triangle (diagonal included).
	Lower Uplo = 'L'
	// Upper selects the upper triangle (diagonal included).
	Upper Uplo = 'U'
)

// Valid reports whether u is a declared triangle selector.
func (u Uplo) Valid() bool { return u == Lower || u == Upper }

// String implements fmt.Stringer.
func (u Uplo) String() string {
	switch u {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "uplo(invalid)"
	}
}

// Side selects which side a diagonal factor is applied from.
type Side byte

const (
	// Left applies the factor from the left (scales rows).
	Left Side = 'L'
	// Right applies the factor from the right (scales columns).
	Right Side = 'R'
)

// Valid reports whether s is a declared side.
func (s Side) Valid() bool { return s == Left || s == Right }

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "side(invalid)"
	}
}

// Orientation specifies how an operand enters an operation: as-is,
// transposed, or conjugate-transposed. Conjugation is the identity for
// non-complex tags; providers document that equivalence rather than
// rejecting the value.
type Orientation byte

const (
	// Normal uses the operand as stored.
	Normal Orientation = 'N'
	// Transposed uses the plain transpose.
	Transposed Orientation = 'T'
	// Adjoint uses the conjugate transpose.
	Adjoint Orientation = 'C'
)

// Valid reports whether o is a declared orientation.
func (o Orientation) Valid() bool {
	return o == Normal || o == Transposed || o == Adjoint
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Normal:
		return "normal"
	case Transposed:
		return "transposed"
	case Adjoint:
		return "adjoint"
	default:
		return "orientation(invalid)"
	}
}
