// SPDX-License-Identifier: MIT
// Package tag: scalar coercion between caller-supplied values and the
// concrete Go types kernels of a given datatype expect.
//
// Purpose:
//   - Callers pass coefficients as complex128 (the widest element type);
//     Datatype.Scalar narrows them to the operand's tag exactly once per
//     call, before any kernel is resolved.
//   - Integer coercion truncates toward zero, matching C conversion of the
//     wrapped library's integer element type.

package tag

// Scalar holds one element value of some Datatype. The dynamic type is one
// of int32, float32, float64, complex64 or complex128; nothing else is ever
// produced by this package or accepted by the reference providers.
type Scalar any

// Scalar coerces v to the concrete element type of d.
// Stage 1 (Validate): non-complex tags reject a nonzero imaginary part.
// Stage 2 (Execute): narrow to the tag's Go type (truncating for Integer32).
// Returns ErrScalarNotReal or ErrUnknownDatatype on failure.
// Complexity: O(1).
func (d Datatype) Scalar(v complex128) (Scalar, error) {
	switch d {
	case Integer32:
		if imag(v) != 0 {
			return nil, ErrScalarNotReal
		}

		return int32(real(v)), nil
	case Real32:
		if imag(v) != 0 {
			return nil, ErrScalarNotReal
		}

		return float32(real(v)), nil
	case Real64:
		if imag(v) != 0 {
			return nil, ErrScalarNotReal
		}

		return real(v), nil
	case Complex64:
		return complex64(v), nil
	case Complex128:
		return v, nil
	default:
		return nil, ErrUnknownDatatype
	}
}

// ScalarOf reports the datatype of a Scalar's dynamic type.
// The second result is false when s is not one of the five element types.
// Complexity: O(1).
func ScalarOf(s Scalar) (Datatype, bool) {
	switch s.(type) {
	case int32:
		return Integer32, true
	case float32:
		return Real32, true
	case float64:
		return Real64, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	default:
		return 0, false
	}
}

// AsComplex widens a Scalar to complex128 for tag-agnostic inspection
// (tests, formatting). The second result is false for foreign types.
// Complexity: O(1).
func AsComplex(s Scalar) (complex128, bool) {
	switch v := s.(type) {
	case int32:
		return complex(float64(v), 0), true
	case float32:
		return complex(float64(v), 0), true
	case float64:
		return complex(v, 0), true
	case complex64:
		return complex128(v), true
	case complex128:
		return v, true
	default:
		return 0, false
	}
}
