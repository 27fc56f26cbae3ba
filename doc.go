// Package matdispatch routes polymorphic dense-matrix operations to
// externally provided numerical kernels, selected jointly by element
// datatype and storage kind.
//
// 🚀 What is matdispatch?
//
//	A small, deterministic dispatch layer that brings together:
//		• Tags: five element datatypes × two storage kinds, with the
//		  base-type relation between complex and real tags
//		• Registry: a build-once, read-only kernel table keyed by
//		  (operation, datatype, storage, variant)
//		• Engine: per-call validation, resolution and invocation for the
//		  full level-1 surface (axpy, dot, norms, extrema, transposes,
//		  diagonal manipulation, callback fills/maps)
//		• Providers: a column-major local reference provider and a
//		  row-block sharded distributed one
//
// ✨ Why choose matdispatch?
//
//   - No silent coercion – mismatched tags and unregistered combinations
//     are first-class, testable errors, never implicit fallbacks
//   - No hidden kernels – every numerical operation runs inside a
//     registered provider entry; the engine itself computes nothing
//   - Pure call-through – no internal locking, no retries, no state
//     between calls
//
// Everything is organized under five subpackages:
//
//	tag/        — datatype/storage tags, scalar coercion, BLAS-style enums
//	kernel/     — keys, call shapes, the register-then-freeze table
//	dispatch/   — the engine: one exported method per logical operation
//	localdense/ — reference provider for Local storage
//	distdense/  — reference provider for Distributed storage
//
// Dive into the package docs for the provider contract and error taxonomy.
package matdispatch
