package tag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savrin-dev/matdispatch/tag"
)

func TestDatatype_Base(t *testing.T) {
	require.Equal(t, tag.Real32, tag.Complex64.Base())
	require.Equal(t, tag.Real64, tag.Complex128.Base())
	// Base is the identity on non-complex tags.
	for _, d := range []tag.Datatype{tag.Integer32, tag.Real32, tag.Real64} {
		require.Equal(t, d, d.Base())
	}
}

func TestDatatype_IsComplex(t *testing.T) {
	require.True(t, tag.Complex64.IsComplex())
	require.True(t, tag.Complex128.IsComplex())
	require.False(t, tag.Integer32.IsComplex())
	require.False(t, tag.Real32.IsComplex())
	require.False(t, tag.Real64.IsComplex())
}

func TestDatatype_Size(t *testing.T) {
	require.Equal(t, 4, tag.Integer32.Size())
	require.Equal(t, 4, tag.Real32.Size())
	require.Equal(t, 8, tag.Real64.Size())
	require.Equal(t, 8, tag.Complex64.Size())
	require.Equal(t, 16, tag.Complex128.Size())
	require.Equal(t, 0, tag.Datatype(200).Size())
}

func TestDatatype_Valid(t *testing.T) {
	for _, d := range []tag.Datatype{
		tag.Integer32, tag.Real32, tag.Real64, tag.Complex64, tag.Complex128,
	} {
		require.True(t, d.Valid(), d.String())
	}
	require.False(t, tag.Datatype(99).Valid())
}

func TestStorage_Valid(t *testing.T) {
	require.True(t, tag.Local.Valid())
	require.True(t, tag.Distributed.Valid())
	require.False(t, tag.Storage(7).Valid())
}

func TestEnums_Valid(t *testing.T) {
	require.True(t, tag.Lower.Valid())
	require.True(t, tag.Upper.Valid())
	require.False(t, tag.Uplo('x').Valid())

	require.True(t, tag.Left.Valid())
	require.True(t, tag.Right.Valid())
	require.False(t, tag.Side('x').Valid())

	require.True(t, tag.Normal.Valid())
	require.True(t, tag.Transposed.Valid())
	require.True(t, tag.Adjoint.Valid())
	require.False(t, tag.Orientation('x').Valid())
}

func TestStringers_Stable(t *testing.T) {
	require.Equal(t, "real64", tag.Real64.String())
	require.Equal(t, "complex64", tag.Complex64.String())
	require.Equal(t, "distributed", tag.Distributed.String())
	require.Equal(t, "lower", tag.Lower.String())
	require.Equal(t, "adjoint", tag.Adjoint.String())
}
