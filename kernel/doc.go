// Package kernel defines the provider contract of the dispatch layer: the
// operation names, the composite keys kernels are registered under, the
// five call shapes a kernel may take, and the register-then-freeze Table
// the engine resolves against.
//
// The kernel package provides:
//
//   - Op/Key/Variant: a kernel is addressed by (operation, datatype,
//     storage, variant); at most one entry may be registered per key.
//   - Call shapes: in-place, elementwise, scalar reduction, extremum
//     reduction, and callback fill/map, each with a fixed Go signature.
//   - Status: kernels return 0 on success; any other value is an opaque
//     provider code the engine forwards without interpretation.
//   - Builder/Table: a Builder accumulates registrations and seals them
//     into an immutable Table. Tables are built once, at provider
//     initialization, and are safe for concurrent resolution afterwards.
//
// Providers (see localdense and distdense) populate a Table; the dispatch
// engine only ever reads it.
package kernel
