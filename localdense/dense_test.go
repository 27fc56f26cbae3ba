// SPDX-License-Identifier: MIT

package localdense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savrin-dev/matdispatch/localdense"
	"github.com/savrin-dev/matdispatch/tag"
)

func TestNew_Validation(t *testing.T) {
	_, err := localdense.New[float64](-1, 2)
	require.ErrorIs(t, err, localdense.ErrInvalidDimensions)

	m, err := localdense.New[float64](0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := localdense.New[int32](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int32(7), v)

	require.ErrorIs(t, m.Set(2, 0, 1), localdense.ErrIndexOutOfBounds)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, localdense.ErrIndexOutOfBounds)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, localdense.ErrIndexOutOfBounds)
}

func TestDense_ColumnMajorLayout(t *testing.T) {
	// Entry (i, j) must live at data[j*rows+i].
	m, err := localdense.New[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 0, 2))
	require.NoError(t, m.Set(0, 1, 3))
	require.NoError(t, m.Set(1, 1, 4))

	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())
}

func TestDense_Options(t *testing.T) {
	t.Run("WithFill", func(t *testing.T) {
		m, err := localdense.New(2, 2, localdense.WithFill[float32](1.5))
		require.NoError(t, err)
		require.Equal(t, []float32{1.5, 1.5, 1.5, 1.5}, m.Data())
	})

	t.Run("WithData", func(t *testing.T) {
		m, err := localdense.New(2, 2, localdense.WithData([]complex128{1, 2i, 3, 4}))
		require.NoError(t, err)
		v, err := m.At(1, 0)
		require.NoError(t, err)
		require.Equal(t, 2i, v)
	})

	t.Run("WithData wrong length", func(t *testing.T) {
		_, err := localdense.New(2, 2, localdense.WithData([]float64{1, 2, 3}))
		require.ErrorIs(t, err, localdense.ErrBadDataLength)
	})

	t.Run("WithDiagonal", func(t *testing.T) {
		m, err := localdense.New(3, 2, localdense.WithDiagonal[int32](9))
		require.NoError(t, err)
		require.Equal(t, []int32{9, 0, 0, 0, 9, 0}, m.Data())
	})
}

func TestDense_Resize(t *testing.T) {
	m, err := localdense.New(2, 2, localdense.WithData([]float64{1, 2, 3, 4}))
	require.NoError(t, err)

	require.NoError(t, m.Resize(3, 2))
	require.Equal(t, []float64{1, 2, 0, 3, 4, 0}, m.Data())

	require.NoError(t, m.Resize(1, 1))
	require.Equal(t, []float64{1}, m.Data())

	require.ErrorIs(t, m.Resize(-1, 1), localdense.ErrInvalidDimensions)
}

func TestDense_Clone(t *testing.T) {
	m, err := localdense.New(1, 2, localdense.WithData([]float64{1, 2}))
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float64(1), v, "clone must not alias the source")
}

func TestDense_OperandContract(t *testing.T) {
	cases := []struct {
		want tag.Datatype
		got  tag.Datatype
	}{
		{tag.Integer32, mustNew[int32](t).Datatype()},
		{tag.Real32, mustNew[float32](t).Datatype()},
		{tag.Real64, mustNew[float64](t).Datatype()},
		{tag.Complex64, mustNew[complex64](t).Datatype()},
		{tag.Complex128, mustNew[complex128](t).Datatype()},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.got)
	}

	m := mustNew[float64](t)
	require.Equal(t, tag.Local, m.Storage())
	require.Same(t, m, m.Native())
}

func mustNew[T localdense.Element](t *testing.T) *localdense.Dense[T] {
	t.Helper()
	m, err := localdense.New[T](1, 1)
	require.NoError(t, err)

	return m
}
