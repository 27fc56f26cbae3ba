// Package tag defines the discriminators the dispatch engine keys on:
// element datatypes, storage kinds, and the BLAS-style positional enums
// (Uplo, Side, Orientation) that parameterize individual operations.
//
// The tag package provides:
//
//   - Datatype: Integer32, Real32, Real64, Complex64, Complex128, with the
//     Base relation (the real type underlying a complex tag, identity
//     otherwise), byte widths and complex-ness.
//   - Storage: Local (single-process dense) vs Distributed (partitioned
//     across a process grid).
//   - Scalar coercion: Datatype.Scalar converts a caller-supplied
//     complex128 into the concrete Go value a kernel of that tag expects,
//     rejecting nonzero imaginary parts against non-complex tags.
//
// Tags are plain comparable values and safe to use as map keys.
package tag
