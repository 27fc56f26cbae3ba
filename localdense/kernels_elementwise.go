// SPDX-License-Identifier: MIT
// Package localdense: multi-operand kernels. The last operand is the
// destination; destinations that take a new shape (copy, transpose,
// hadamard, real/imag part) are reshaped here rather than by the caller.

package localdense

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// get2 recovers a same-type operand pair.
func get2[T Element](ops []kernel.Operand) (x, y *Dense[T], st kernel.Status) {
	if x, st = get[T](ops[0]); st != kernel.OK {
		return nil, nil, st
	}
	if y, st = get[T](ops[1]); st != kernel.OK {
		return nil, nil, st
	}

	return x, y, kernel.OK
}

func axpyKernel[T Element]() kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		x, y, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		alpha, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		if x.rows != y.rows || x.cols != y.cols {
			return StatusShapeMismatch
		}
		for i := range x.data {
			y.data[i] += alpha * x.data[i]
		}

		return kernel.OK
	}
}

func axpyTriangleKernel[T Element]() kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		x, y, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		alpha, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		if x.rows != y.rows || x.cols != y.cols {
			return StatusShapeMismatch
		}
		for j := 0; j < x.cols; j++ {
			for i := 0; i < x.rows; i++ {
				if inTrapezoid(p.Uplo, 0, i, j) {
					y.set(i, j, y.at(i, j)+alpha*x.at(i, j))
				}
			}
		}

		return kernel.OK
	}
}

func copyKernel[T Element]() kernel.ElementwiseFunc {
	return func(_ kernel.Params, ops []kernel.Operand) kernel.Status {
		a, b, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		b.reshape(a.rows, a.cols)
		copy(b.data, a.data)

		return kernel.OK
	}
}

func hadamardKernel[T Element]() kernel.ElementwiseFunc {
	return func(_ kernel.Params, ops []kernel.Operand) kernel.Status {
		a, b, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		c, st := get[T](ops[2])
		if st != kernel.OK {
			return st
		}
		if a.rows != b.rows || a.cols != b.cols {
			return StatusShapeMismatch
		}
		c.reshape(a.rows, a.cols)
		for i := range a.data {
			c.data[i] = a.data[i] * b.data[i]
		}

		return kernel.OK
	}
}

// diagonalApply is the shared body of DiagonalScale/DiagonalSolve and
// their trapezoid variants. combine merges a (possibly conjugated)
// diagonal factor into one entry of x; trapezoid limits the touched
// region when p carries an uplo from the trapezoid variant.
func diagonalApply[T Element](
	p kernel.Params, ops []kernel.Operand,
	conj func(T) T, trapezoid bool,
	combine func(d, v T) (T, kernel.Status),
) kernel.Status {
	d, x, st := get2[T](ops)
	if st != kernel.OK {
		return st
	}
	if !d.isVector() {
		return StatusNotVector
	}
	want := x.rows
	if p.Side == tag.Right {
		want = x.cols
	}
	if len(d.data) != want {
		return StatusShapeMismatch
	}
	factor := func(k int) T {
		v := d.data[k]
		if p.Orient == tag.Adjoint {
			return conj(v)
		}
		return v
	}
	for j := 0; j < x.cols; j++ {
		for i := 0; i < x.rows; i++ {
			if trapezoid && !inTrapezoid(p.Uplo, p.Offset, i, j) {
				continue
			}
			k := i
			if p.Side == tag.Right {
				k = j
			}
			out, st := combine(factor(k), x.at(i, j))
			if st != kernel.OK {
				return st
			}
			x.set(i, j, out)
		}
	}

	return kernel.OK
}

func diagonalScaleKernel[T Element](conj func(T) T, trapezoid bool) kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		return diagonalApply(p, ops, conj, trapezoid,
			func(d, v T) (T, kernel.Status) { return d * v, kernel.OK })
	}
}

func diagonalSolveKernel[T Element](conj func(T) T, isZero func(T) bool) kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		d, st := get[T](ops[0])
		if st != kernel.OK {
			return st
		}
		// Reject a singular factor before any entry of x is touched.
		for _, v := range d.data {
			if isZero(v) {
				return StatusSingular
			}
		}

		return diagonalApply(p, ops, conj, false,
			func(d, v T) (T, kernel.Status) { return v / d, kernel.OK })
	}
}

// swapKernel exchanges x and y. Normal orientation needs equal shapes;
// Transposed/Adjoint exchange x with the (conjugate) transpose of y and
// need transposed shapes.
func swapKernel[T Element](conj func(T) T) kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		x, y, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		if p.Orient == tag.Normal {
			if x.rows != y.rows || x.cols != y.cols {
				return StatusShapeMismatch
			}
			for i := range x.data {
				x.data[i], y.data[i] = y.data[i], x.data[i]
			}
			return kernel.OK
		}
		if x.rows != y.cols || x.cols != y.rows {
			return StatusShapeMismatch
		}
		c := func(v T) T { return v }
		if p.Orient == tag.Adjoint {
			c = conj
		}
		for j := 0; j < x.cols; j++ {
			for i := 0; i < x.rows; i++ {
				xv, yv := x.at(i, j), y.at(j, i)
				x.set(i, j, c(yv))
				y.set(j, i, c(xv))
			}
		}

		return kernel.OK
	}
}

// transposeKernel writes the (conjugate) transpose of a into b.
func transposeKernel[T Element](conj func(T) T, conjugate bool) kernel.ElementwiseFunc {
	return func(_ kernel.Params, ops []kernel.Operand) kernel.Status {
		a, b, st := get2[T](ops)
		if st != kernel.OK {
			return st
		}
		b.reshape(a.cols, a.rows)
		for j := 0; j < a.cols; j++ {
			for i := 0; i < a.rows; i++ {
				v := a.at(i, j)
				if conjugate {
					v = conj(v)
				}
				b.set(j, i, v)
			}
		}

		return kernel.OK
	}
}

// partKernel extracts an entrywise component of a C-typed source into an
// R-typed destination (R is the base type of C; for real sources C == R).
func partKernel[C Element, R Element](part func(C) R) kernel.ElementwiseFunc {
	return func(_ kernel.Params, ops []kernel.Operand) kernel.Status {
		src, st := get[C](ops[0])
		if st != kernel.OK {
			return st
		}
		dst, st := get[R](ops[1])
		if st != kernel.OK {
			return st
		}
		dst.reshape(src.rows, src.cols)
		for i := range src.data {
			dst.data[i] = part(src.data[i])
		}

		return kernel.OK
	}
}
