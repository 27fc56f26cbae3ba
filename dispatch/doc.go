// Package dispatch implements the tagged dispatch engine: it validates
// operand tag compatibility, resolves the kernel registered under
// (operation, datatype, storage, variant), and invokes it, forwarding the
// provider's result or failure status.
//
// The dispatch package provides:
//
//   - One exported Engine method per logical operation: the elementwise
//     family (Axpy, Copy, Hadamard, Scale, Fill, Zero, ...), reductions
//     (Dot, Dotu, HilbertSchmidt, Nrm2), extrema searches (Max/Min and
//     their Abs, Symmetric and Vector forms), structural operations
//     (MakeSymmetric, MakeTrapezoidal, Transpose, RealPart, swaps,
//     diagonal manipulation) and callback-driven fills/maps.
//   - Strict validation before any kernel call: storage kinds first, then
//     datatype tags, then scalar/callback typing. A call that fails
//     validation leaves no partial mutation behind, because no kernel ran.
//   - A four-sentinel error taxonomy: ErrTypeMismatch (storage kinds
//     differ), ErrDatatypeMismatch (element tags differ or violate the
//     base-type relation), kernel.ErrUnsupportedCombination (no entry for
//     the key) and ErrKernelFailure (non-success provider status, carried
//     by KernelError).
//
// The engine is a synchronous call-through: no internal locking, no
// retries, no state between calls. Concurrent calls over disjoint operands
// are safe; serializing mutation of a shared operand is the caller's job.
package dispatch
