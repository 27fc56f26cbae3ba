// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/savrin-dev/matdispatch/tag"
)

// Variant distinguishes conjugated kernel flavors registered under the
// same logical operation: Hermitian vs symmetric symmetrization, adjoint
// vs plain transpose, unconjugated vs conjugated complex inner product.
type Variant uint8

const (
	// VariantNone is the default kernel flavor.
	VariantNone Variant = iota
	// VariantConjugated selects the conjugating flavor (complex tags only;
	// for real tags the flavors coincide and only VariantNone is registered).
	VariantConjugated

	numVariants // sentinel for validation; keep last
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "none"
	case VariantConjugated:
		return "conjugated"
	default:
		return "variant(invalid)"
	}
}

// Key is the composite registry key: one kernel per
// (operation, datatype, storage, variant). Keys are comparable and used
// directly as map keys.
type Key struct {
	Op      Op
	Dtype   tag.Datatype
	Storage tag.Storage
	Variant Variant
}

// valid reports whether every component of k is in range.
func (k Key) valid() bool {
	return k.Op != "" && k.Dtype.Valid() && k.Storage.Valid() && k.Variant < numVariants
}

// String implements fmt.Stringer; the format is stable for logs and tests.
func (k Key) String() string {
	if k.Variant == VariantNone {
		return fmt.Sprintf("%s[%s,%s]", k.Op, k.Dtype, k.Storage)
	}

	return fmt.Sprintf("%s[%s,%s,%s]", k.Op, k.Dtype, k.Storage, k.Variant)
}
