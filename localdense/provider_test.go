// SPDX-License-Identifier: MIT

package localdense_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savrin-dev/matdispatch/dispatch"
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/localdense"
	"github.com/savrin-dev/matdispatch/tag"
)

func engine(t *testing.T) *dispatch.Engine {
	t.Helper()
	eng, err := dispatch.New(localdense.MustTable())
	require.NoError(t, err)

	return eng
}

// mk builds a matrix from column-major data.
func mk[T localdense.Element](t *testing.T, rows, cols int, data []T) *localdense.Dense[T] {
	t.Helper()
	m, err := localdense.New(rows, cols, localdense.WithData(data))
	require.NoError(t, err)

	return m
}

// failStatus asserts err is a kernel failure carrying the given status.
func failStatus(t *testing.T, err error, want kernel.Status) {
	t.Helper()
	require.ErrorIs(t, err, dispatch.ErrKernelFailure)
	var kerr *dispatch.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, want, kerr.Status)
}

func TestTable_Axpy(t *testing.T) {
	eng := engine(t)
	x := mk(t, 2, 2, []float64{1, 2, 3, 4})
	y := mk(t, 2, 2, []float64{10, 20, 30, 40})

	require.NoError(t, eng.Axpy(2, x, y))
	require.Equal(t, []float64{12, 24, 36, 48}, y.Data())

	t.Run("shape mismatch", func(t *testing.T) {
		bad := mk(t, 1, 2, []float64{0, 0})
		failStatus(t, eng.Axpy(1, x, bad), localdense.StatusShapeMismatch)
	})
}

func TestTable_AxpyTriangle(t *testing.T) {
	eng := engine(t)
	x := mk(t, 2, 2, []float64{1, 1, 1, 1})
	y := mk(t, 2, 2, []float64{0, 0, 0, 0})

	require.NoError(t, eng.AxpyTriangle(tag.Lower, 3, x, y))
	// Strictly upper (0,1) untouched.
	require.Equal(t, []float64{3, 3, 0, 3}, y.Data())
}

func TestTable_ScaleFillZero(t *testing.T) {
	eng := engine(t)

	a := mk(t, 1, 3, []int32{1, 2, 3})
	require.NoError(t, eng.Scale(3, a))
	require.Equal(t, []int32{3, 6, 9}, a.Data())

	c := mk(t, 1, 2, []complex128{0, 0})
	require.NoError(t, eng.Fill(c, 1+2i))
	require.Equal(t, []complex128{1 + 2i, 1 + 2i}, c.Data())

	require.NoError(t, eng.Zero(c))
	require.Equal(t, []complex128{0, 0}, c.Data())
}

func TestTable_ScaleTrapezoid(t *testing.T) {
	eng := engine(t)
	a := mk(t, 2, 2, []float64{1, 1, 1, 1})

	require.NoError(t, eng.ScaleTrapezoid(5, tag.Upper, a, 0))
	// Strictly lower (1,0) untouched.
	require.Equal(t, []float64{5, 1, 5, 5}, a.Data())
}

func TestTable_Diagonals(t *testing.T) {
	eng := engine(t)
	a := mk(t, 3, 3, make([]float64, 9))

	require.NoError(t, eng.SetDiagonal(a, 5, 1))
	v, err := a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, float64(5), v)
	v, err = a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float64(5), v)

	require.NoError(t, eng.UpdateDiagonal(a, 2, -1))
	v, err = a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, float64(2), v)

	t.Run("offset out of range", func(t *testing.T) {
		failStatus(t, eng.SetDiagonal(a, 1, 3), localdense.StatusBadIndex)
		failStatus(t, eng.SetDiagonal(a, 1, -3), localdense.StatusBadIndex)
	})
}

func TestTable_MakeSymmetricHermitian(t *testing.T) {
	eng := engine(t)

	t.Run("symmetric mirror", func(t *testing.T) {
		a := mk(t, 2, 2, []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i})
		require.NoError(t, eng.MakeSymmetric(tag.Lower, a, false))
		require.Equal(t, []complex128{1 + 1i, 2 + 2i, 2 + 2i, 4 + 4i}, a.Data())
	})

	t.Run("hermitian mirror and real diagonal", func(t *testing.T) {
		a := mk(t, 2, 2, []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i})
		require.NoError(t, eng.MakeHermitian(tag.Lower, a))
		require.Equal(t, []complex128{1, 2 + 2i, 2 - 2i, 4}, a.Data())
	})

	t.Run("real tag with conjugation", func(t *testing.T) {
		a := mk(t, 2, 2, []float64{1, 2, 3, 4})
		require.NoError(t, eng.MakeSymmetric(tag.Upper, a, true))
		require.Equal(t, []float64{1, 3, 3, 4}, a.Data())
	})

	t.Run("not square", func(t *testing.T) {
		a := mk(t, 1, 2, []float64{1, 2})
		failStatus(t, eng.MakeSymmetric(tag.Lower, a, false), localdense.StatusNotSquare)
	})
}

func TestTable_MakeTrapezoidalTriangular(t *testing.T) {
	eng := engine(t)

	a := mk(t, 3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, eng.MakeTriangular(tag.Upper, a))
	require.Equal(t, []float64{1, 0, 0, 1, 1, 0, 1, 1, 1}, a.Data())

	b := mk(t, 3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, eng.MakeTrapezoidal(tag.Lower, b, 1))
	// Only (0, 2) lies above the offset-1 superdiagonal.
	require.Equal(t, []float64{1, 1, 1, 1, 1, 1, 0, 1, 1}, b.Data())
}

func TestTable_MakeRealConjugate(t *testing.T) {
	eng := engine(t)

	a := mk(t, 2, 2, []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i})
	require.NoError(t, eng.MakeReal(tag.Lower, a))
	// Strictly upper (0,1) keeps its imaginary part.
	require.Equal(t, []complex128{1, 2, 3 + 3i, 4}, a.Data())

	b := mk(t, 1, 2, []complex64{1 + 2i, 3 - 4i})
	require.NoError(t, eng.Conjugate(b))
	require.Equal(t, []complex64{1 - 2i, 3 + 4i}, b.Data())
}

func TestTable_TransposeAdjoint(t *testing.T) {
	eng := engine(t)
	a := mk(t, 1, 2, []complex128{1 + 2i, 3})

	b := mk(t, 1, 1, []complex128{0})
	require.NoError(t, eng.Transpose(a, b, false))
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 1, b.Cols())
	require.Equal(t, []complex128{1 + 2i, 3}, b.Data())

	require.NoError(t, eng.Adjoint(a, b))
	require.Equal(t, []complex128{1 - 2i, 3}, b.Data())

	t.Run("integer transpose", func(t *testing.T) {
		x := mk(t, 2, 1, []int32{7, 8})
		y := mk(t, 1, 1, []int32{0})
		require.NoError(t, eng.Transpose(x, y, false))
		require.Equal(t, []int32{7, 8}, y.Data())
		require.Equal(t, 1, y.Rows())
		require.Equal(t, 2, y.Cols())
	})
}

func TestTable_CopyResizes(t *testing.T) {
	eng := engine(t)
	a := mk(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	b := mk(t, 1, 1, []float32{0})

	require.NoError(t, eng.Copy(a, b))
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())
	require.Equal(t, a.Data(), b.Data())
}

func TestTable_Hadamard(t *testing.T) {
	eng := engine(t)
	a := mk(t, 1, 2, []float64{1, 2})
	b := mk(t, 1, 2, []float64{3, 4})
	c := mk(t, 1, 1, []float64{0})

	require.NoError(t, eng.Hadamard(a, b, c))
	require.Equal(t, []float64{3, 8}, c.Data())
}

func TestTable_Reductions(t *testing.T) {
	eng := engine(t)

	t.Run("real dot", func(t *testing.T) {
		x := mk(t, 2, 1, []float64{1, 2})
		y := mk(t, 2, 1, []float64{3, 4})
		got, err := eng.Dot(x, y)
		require.NoError(t, err)
		require.Equal(t, float64(11), got)
	})

	t.Run("complex dot conjugates the left side", func(t *testing.T) {
		x := mk(t, 1, 1, []complex128{1i})
		y := mk(t, 1, 1, []complex128{1})
		got, err := eng.Dot(x, y)
		require.NoError(t, err)
		require.Equal(t, complex128(-1i), got)

		got, err = eng.Dotu(x, y)
		require.NoError(t, err)
		require.Equal(t, complex128(1i), got)
	})

	t.Run("hilbert-schmidt", func(t *testing.T) {
		x := mk(t, 2, 2, []complex64{1i, 0, 0, 2})
		y := mk(t, 2, 2, []complex64{1i, 0, 0, 3})
		got, err := eng.HilbertSchmidt(x, y)
		require.NoError(t, err)
		require.Equal(t, complex64(7), got)
	})

	t.Run("nrm2 reports the base type", func(t *testing.T) {
		a := mk(t, 2, 1, []float64{3, 4})
		got, err := eng.Nrm2(a)
		require.NoError(t, err)
		require.Equal(t, float64(5), got)

		b := mk(t, 1, 2, []complex64{3i, 4})
		got, err = eng.Nrm2(b)
		require.NoError(t, err)
		require.Equal(t, float32(5), got)
	})
}

func TestTable_Extrema(t *testing.T) {
	eng := engine(t)
	a := mk(t, 2, 2, []float64{1, -5, 2, 4})

	res, err := eng.Max(a)
	require.NoError(t, err)
	require.Equal(t, float64(4), res.Value)
	require.Equal(t, 1, res.Row)
	require.Equal(t, 1, res.Col)

	res, err = eng.Min(a)
	require.NoError(t, err)
	require.Equal(t, float64(-5), res.Value)
	require.Equal(t, 1, res.Row)
	require.Equal(t, 0, res.Col)

	res, err = eng.MaxAbs(a)
	require.NoError(t, err)
	require.Equal(t, float64(5), res.Value)
	require.Equal(t, 1, res.Row)
	require.Equal(t, 0, res.Col)

	t.Run("complex magnitudes report the base type", func(t *testing.T) {
		c := mk(t, 1, 2, []complex64{3 + 4i, 1})
		res, err := eng.MaxAbs(c)
		require.NoError(t, err)
		require.Equal(t, float32(5), res.Value)
	})

	t.Run("empty search", func(t *testing.T) {
		e := mk[float64](t, 0, 3, nil)
		_, err := eng.Max(e)
		failStatus(t, err, localdense.StatusEmpty)
	})
}

func TestTable_VectorExtrema(t *testing.T) {
	eng := engine(t)

	col := mk(t, 3, 1, []float64{1, -7, 3})
	res, err := eng.VectorMaxAbs(col)
	require.NoError(t, err)
	require.Equal(t, float64(7), res.Value)
	require.Equal(t, 1, res.Row)
	require.Equal(t, -1, res.Col)

	row := mk(t, 1, 3, []float64{1, 9, 2})
	res, err = eng.VectorMax(row)
	require.NoError(t, err)
	require.Equal(t, float64(9), res.Value)
	require.Equal(t, 1, res.Row, "row vectors report the column as the linear index")
	require.Equal(t, -1, res.Col)

	t.Run("not a vector", func(t *testing.T) {
		m := mk(t, 2, 2, []float64{1, 2, 3, 4})
		_, err := eng.VectorMax(m)
		failStatus(t, err, localdense.StatusNotVector)
	})
}

func TestTable_SymmetricExtrema(t *testing.T) {
	eng := engine(t)
	data := make([]float64, 9)
	a := mk(t, 3, 3, data)
	require.NoError(t, a.Set(0, 2, 100)) // strictly upper
	require.NoError(t, a.Set(2, 0, 5))   // strictly lower
	require.NoError(t, a.Set(1, 1, 2))

	res, err := eng.SymmetricMax(tag.Lower, a)
	require.NoError(t, err)
	require.Equal(t, float64(5), res.Value, "strict upper entries are outside the search")
	require.Equal(t, 2, res.Row)
	require.Equal(t, 0, res.Col)

	res, err = eng.Max(a)
	require.NoError(t, err)
	require.Equal(t, float64(100), res.Value)
}

func TestTable_DiagonalScaleSolve(t *testing.T) {
	eng := engine(t)

	t.Run("left scale and solve round trip", func(t *testing.T) {
		x := mk(t, 2, 2, []float64{1, 2, 3, 4})
		d := mk(t, 2, 1, []float64{2, 4})

		require.NoError(t, eng.DiagonalScale(tag.Left, tag.Normal, d, x))
		require.Equal(t, []float64{2, 8, 6, 16}, x.Data())

		require.NoError(t, eng.DiagonalSolve(tag.Left, tag.Normal, d, x))
		require.Equal(t, []float64{1, 2, 3, 4}, x.Data())
	})

	t.Run("right scale uses columns", func(t *testing.T) {
		x := mk(t, 2, 2, []float64{1, 2, 3, 4})
		d := mk(t, 1, 2, []float64{10, 100})
		require.NoError(t, eng.DiagonalScale(tag.Right, tag.Normal, d, x))
		require.Equal(t, []float64{10, 20, 300, 400}, x.Data())
	})

	t.Run("adjoint conjugates the factor", func(t *testing.T) {
		x := mk(t, 1, 1, []complex128{2})
		d := mk(t, 1, 1, []complex128{1i})
		require.NoError(t, eng.DiagonalScale(tag.Left, tag.Adjoint, d, x))
		require.Equal(t, []complex128{-2i}, x.Data())
	})

	t.Run("singular factor leaves x untouched", func(t *testing.T) {
		x := mk(t, 2, 1, []float64{1, 2})
		d := mk(t, 2, 1, []float64{0, 1})
		failStatus(t, eng.DiagonalSolve(tag.Left, tag.Normal, d, x), localdense.StatusSingular)
		require.Equal(t, []float64{1, 2}, x.Data())
	})

	t.Run("factor must be a vector", func(t *testing.T) {
		x := mk(t, 2, 2, make([]float64, 4))
		d := mk(t, 2, 2, make([]float64, 4))
		failStatus(t, eng.DiagonalScale(tag.Left, tag.Normal, d, x), localdense.StatusNotVector)
	})
}

func TestTable_Swaps(t *testing.T) {
	eng := engine(t)

	t.Run("normal swap", func(t *testing.T) {
		x := mk(t, 1, 2, []float64{1, 2})
		y := mk(t, 1, 2, []float64{3, 4})
		require.NoError(t, eng.Swap(tag.Normal, x, y))
		require.Equal(t, []float64{3, 4}, x.Data())
		require.Equal(t, []float64{1, 2}, y.Data())
	})

	t.Run("transposed swap", func(t *testing.T) {
		x := mk(t, 1, 2, []float64{1, 2})
		y := mk(t, 2, 1, []float64{3, 4})
		require.NoError(t, eng.Swap(tag.Transposed, x, y))
		require.Equal(t, []float64{3, 4}, x.Data())
		require.Equal(t, []float64{1, 2}, y.Data())
	})

	t.Run("adjoint swap conjugates both sides", func(t *testing.T) {
		x := mk(t, 1, 1, []complex128{1 + 2i})
		y := mk(t, 1, 1, []complex128{3 - 4i})
		require.NoError(t, eng.Swap(tag.Adjoint, x, y))
		require.Equal(t, []complex128{3 + 4i}, x.Data())
		require.Equal(t, []complex128{1 - 2i}, y.Data())
	})

	t.Run("row and column swaps", func(t *testing.T) {
		a := mk(t, 2, 2, []float64{1, 2, 3, 4})
		require.NoError(t, eng.RowSwap(a, 0, 1))
		require.Equal(t, []float64{2, 1, 4, 3}, a.Data())
		require.NoError(t, eng.ColSwap(a, 0, 1))
		require.Equal(t, []float64{4, 3, 2, 1}, a.Data())

		failStatus(t, eng.RowSwap(a, 0, 2), localdense.StatusBadIndex)
	})

	t.Run("symmetric swap preserves symmetry", func(t *testing.T) {
		// [1 2; 2 3] with indices 0,1 exchanged is [3 2; 2 1].
		a := mk(t, 2, 2, []float64{1, 2, 2, 3})
		require.NoError(t, eng.SymmetricSwap(tag.Lower, a, 0, 1))
		require.Equal(t, []float64{3, 2, 2, 1}, a.Data())
	})
}

func TestTable_Parts(t *testing.T) {
	eng := engine(t)

	a := mk(t, 1, 2, []complex64{1 + 2i, 3 - 4i})
	re := mk(t, 1, 1, []float32{0})
	im := mk(t, 1, 1, []float32{0})

	require.NoError(t, eng.RealPart(a, re))
	require.Equal(t, []float32{1, 3}, re.Data())

	require.NoError(t, eng.ImagPart(a, im))
	require.Equal(t, []float32{2, -4}, im.Data())

	t.Run("real source has zero imaginary part", func(t *testing.T) {
		x := mk(t, 1, 2, []float64{5, 6})
		out := mk(t, 1, 2, []float64{9, 9})
		require.NoError(t, eng.ImagPart(x, out))
		require.Equal(t, []float64{0, 0}, out.Data())
	})
}

func TestTable_FillMapCallbacks(t *testing.T) {
	eng := engine(t)

	t.Run("entrywise fill runs column-major", func(t *testing.T) {
		a := mk(t, 2, 2, make([]int32, 4))
		var n int32
		require.NoError(t, eng.EntrywiseFill(a, func() int32 { n++; return n }))
		require.Equal(t, []int32{1, 2, 3, 4}, a.Data())
	})

	t.Run("entrywise map", func(t *testing.T) {
		a := mk(t, 1, 3, []float64{1, 2, 3})
		require.NoError(t, eng.EntrywiseMap(a, func(v float64) float64 { return v * v }))
		require.Equal(t, []float64{1, 4, 9}, a.Data())
	})

	t.Run("index-dependent fill", func(t *testing.T) {
		a := mk(t, 2, 3, make([]int32, 6))
		require.NoError(t, eng.IndexDependentFill(a, func(i, j int) int32 {
			return int32(10*i + j)
		}))
		v, err := a.At(1, 2)
		require.NoError(t, err)
		require.Equal(t, int32(12), v)
	})

	t.Run("index-dependent map", func(t *testing.T) {
		a := mk(t, 2, 2, []complex128{1, 1, 1, 1})
		require.NoError(t, eng.IndexDependentMap(a, func(i, j int, v complex128) complex128 {
			return v + complex(float64(i), float64(j))
		}))
		require.Equal(t, []complex128{1, 2, 1 + 1i, 2 + 1i}, a.Data())
	})
}

func TestTable_UnsupportedCombinations(t *testing.T) {
	eng := engine(t)

	c := mk(t, 1, 1, []complex128{1})
	i := mk(t, 1, 1, []int32{1})
	f := mk(t, 1, 1, []float64{1})

	_, err := eng.Max(c)
	require.ErrorIs(t, err, kernel.ErrUnsupportedCombination)
	_, err = eng.Min(mk(t, 1, 1, []complex64{1}))
	require.ErrorIs(t, err, kernel.ErrUnsupportedCombination)

	_, err = eng.Nrm2(i)
	require.ErrorIs(t, err, kernel.ErrUnsupportedCombination)

	require.ErrorIs(t, eng.Conjugate(f), kernel.ErrUnsupportedCombination)
	require.ErrorIs(t, eng.MakeReal(tag.Lower, f), kernel.ErrUnsupportedCombination)

	di := mk(t, 1, 1, []int32{2})
	require.ErrorIs(t, eng.DiagonalSolve(tag.Left, tag.Normal, di, i),
		kernel.ErrUnsupportedCombination)

	require.ErrorIs(t, eng.RealPart(i, i), kernel.ErrUnsupportedCombination,
		"integer part extraction is never registered")
}
