package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

func noopInPlace(kernel.Params, kernel.Operand) kernel.Status { return kernel.OK }

func key(op kernel.Op, d tag.Datatype, s tag.Storage) kernel.Key {
	return kernel.Key{Op: op, Dtype: d, Storage: s}
}

func TestBuilder_RegisterAndResolve(t *testing.T) {
	b := kernel.NewBuilder()
	k := key(kernel.OpZero, tag.Real64, tag.Local)
	require.NoError(t, b.Register(k, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)))

	tbl := b.Build()
	e, err := tbl.Resolve(k)
	require.NoError(t, err)
	require.Equal(t, kernel.ShapeInPlace, e.Shape())

	fn, ok := e.InPlace()
	require.True(t, ok)
	require.Equal(t, kernel.OK, fn(kernel.Params{}, nil))

	// Cross-shape accessor must refuse.
	_, ok = e.Reduce()
	require.False(t, ok)
}

func TestBuilder_DuplicateKeyRejected(t *testing.T) {
	b := kernel.NewBuilder()
	k := key(kernel.OpZero, tag.Real64, tag.Local)
	require.NoError(t, b.Register(k, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)))
	err := b.Register(k, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace))
	require.ErrorIs(t, err, kernel.ErrDuplicateKernel)
}

func TestBuilder_NilAndMismatchedFuncRejected(t *testing.T) {
	b := kernel.NewBuilder()
	k := key(kernel.OpZero, tag.Real64, tag.Local)

	require.ErrorIs(t, b.Register(k, kernel.ShapeInPlace, nil), kernel.ErrNilKernel)

	// An in-place func registered under the reduce shape is a shape mismatch.
	err := b.Register(k, kernel.ShapeReduce, kernel.InPlaceFunc(noopInPlace))
	require.ErrorIs(t, err, kernel.ErrShapeMismatch)
}

func TestBuilder_BadKeyRejected(t *testing.T) {
	b := kernel.NewBuilder()
	bad := kernel.Key{Op: "", Dtype: tag.Real64, Storage: tag.Local}
	require.ErrorIs(t, b.Register(bad, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)), kernel.ErrBadKey)

	bad = kernel.Key{Op: kernel.OpZero, Dtype: tag.Datatype(99), Storage: tag.Local}
	require.ErrorIs(t, b.Register(bad, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)), kernel.ErrBadKey)
}

func TestTable_ResolveUnregistered(t *testing.T) {
	tbl := kernel.NewBuilder().Build()
	_, err := tbl.Resolve(key(kernel.OpNrm2, tag.Integer32, tag.Local))
	require.ErrorIs(t, err, kernel.ErrUnsupportedCombination)
}

func TestTable_BuildIsSnapshot(t *testing.T) {
	b := kernel.NewBuilder()
	k1 := key(kernel.OpZero, tag.Real64, tag.Local)
	require.NoError(t, b.Register(k1, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)))
	tbl := b.Build()

	// Registrations after Build must not leak into the sealed table.
	k2 := key(kernel.OpZero, tag.Real32, tag.Local)
	require.NoError(t, b.Register(k2, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)))

	require.True(t, tbl.Has(k1))
	require.False(t, tbl.Has(k2))
	require.Equal(t, 1, tbl.Len())
}

func TestTable_Range(t *testing.T) {
	b := kernel.NewBuilder()
	keys := []kernel.Key{
		key(kernel.OpZero, tag.Real64, tag.Local),
		key(kernel.OpZero, tag.Real32, tag.Local),
		key(kernel.OpZero, tag.Integer32, tag.Local),
	}
	for _, k := range keys {
		require.NoError(t, b.Register(k, kernel.ShapeInPlace, kernel.InPlaceFunc(noopInPlace)))
	}
	tbl := b.Build()

	seen := make(map[kernel.Key]bool)
	tbl.Range(func(k kernel.Key, _ kernel.Entry) bool {
		seen[k] = true

		return true
	})
	require.Len(t, seen, len(keys))

	// Early termination after the first entry.
	count := 0
	tbl.Range(func(kernel.Key, kernel.Entry) bool {
		count++

		return false
	})
	require.Equal(t, 1, count)
}

func TestKey_String(t *testing.T) {
	k := key(kernel.OpDot, tag.Complex128, tag.Distributed)
	require.Equal(t, "dot[complex128,distributed]", k.String())

	k.Variant = kernel.VariantConjugated
	require.Equal(t, "dot[complex128,distributed,conjugated]", k.String())
}
