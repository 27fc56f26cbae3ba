// SPDX-License-Identifier: MIT
// Package localdense: unary mutating kernels (scale family, diagonals,
// structural masking, swaps). Every kernel validates shape parameters
// itself and reports failures through the exported status codes; the
// engine has already pinned datatypes and storage.

package localdense

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// diagSpan resolves the start cell and length of the diagonal addressed
// by offset (positive offsets move right, negative move down).
func diagSpan(rows, cols, offset int) (i0, j0, n int) {
	if offset >= 0 {
		j0 = offset
	} else {
		i0 = -offset
	}
	n = min(rows-i0, cols-j0)

	return i0, j0, n
}

// inTrapezoid reports whether cell (i, j) belongs to the trapezoid
// selected by uplo and offset (diagonal offset included on both sides).
func inTrapezoid(uplo tag.Uplo, offset, i, j int) bool {
	if uplo == tag.Lower {
		return i >= j-offset
	}

	return i <= j-offset
}

func zeroKernel[T Element]() kernel.InPlaceFunc {
	return func(_ kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		var z T
		for i := range m.data {
			m.data[i] = z
		}

		return kernel.OK
	}
}

func fillKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		v, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		for i := range m.data {
			m.data[i] = v
		}

		return kernel.OK
	}
}

func scaleKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		alpha, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		for i := range m.data {
			m.data[i] *= alpha
		}

		return kernel.OK
	}
}

// scaleTrapezoidKernel scales only the trapezoid selected by uplo/offset.
func scaleTrapezoidKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		alpha, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				if inTrapezoid(p.Uplo, p.Offset, i, j) {
					m.set(i, j, m.at(i, j)*alpha)
				}
			}
		}

		return kernel.OK
	}
}

func setDiagonalKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		v, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		i0, j0, n := diagSpan(m.rows, m.cols, p.Offset)
		if n <= 0 {
			if m.rows == 0 || m.cols == 0 {
				return kernel.OK
			}
			return StatusBadIndex
		}
		for k := 0; k < n; k++ {
			m.set(i0+k, j0+k, v)
		}

		return kernel.OK
	}
}

func updateDiagonalKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		v, ok := p.Alpha.(T)
		if !ok {
			return StatusBadScalar
		}
		i0, j0, n := diagSpan(m.rows, m.cols, p.Offset)
		if n <= 0 {
			if m.rows == 0 || m.cols == 0 {
				return kernel.OK
			}
			return StatusBadIndex
		}
		for k := 0; k < n; k++ {
			m.set(i0+k, j0+k, m.at(i0+k, j0+k)+v)
		}

		return kernel.OK
	}
}

// conjugateKernel negates the imaginary part entrywise; registered for
// complex tags only.
func conjugateKernel[T Element](conj func(T) T) kernel.InPlaceFunc {
	return func(_ kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		for i := range m.data {
			m.data[i] = conj(m.data[i])
		}

		return kernel.OK
	}
}

// makeSymmetricKernel mirrors the uplo triangle onto the other half.
// With hermitian=true the mirror is conjugated and the diagonal forced
// onto the real axis.
func makeSymmetricKernel[T Element](conj func(T) T, hermitian bool) kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		if m.rows != m.cols {
			return StatusNotSquare
		}
		mirror := func(v T) T { return v }
		if hermitian {
			mirror = conj
		}
		for j := 0; j < m.cols; j++ {
			for i := j + 1; i < m.rows; i++ {
				// (i, j) is strictly lower; (j, i) strictly upper.
				if p.Uplo == tag.Lower {
					m.set(j, i, mirror(m.at(i, j)))
				} else {
					m.set(i, j, mirror(m.at(j, i)))
				}
			}
		}
		if hermitian {
			for k := 0; k < m.rows; k++ {
				v := m.at(k, k)
				m.set(k, k, (v+conj(v))/2)
			}
		}

		return kernel.OK
	}
}

// makeRealKernel zeroes the imaginary part of the uplo triangle.
func makeRealKernel[T Element](realOf func(T) T) kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				if inTrapezoid(p.Uplo, 0, i, j) {
					m.set(i, j, realOf(m.at(i, j)))
				}
			}
		}

		return kernel.OK
	}
}

// makeTrapezoidalKernel zeroes everything outside the uplo/offset
// trapezoid; makeTriangular registers the same body with offset pinned
// via Params.
func makeTrapezoidalKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		var z T
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				if !inTrapezoid(p.Uplo, p.Offset, i, j) {
					m.set(i, j, z)
				}
			}
		}

		return kernel.OK
	}
}

func rowSwapKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		if p.To < 0 || p.To >= m.rows || p.From < 0 || p.From >= m.rows {
			return StatusBadIndex
		}
		if p.To == p.From {
			return kernel.OK
		}
		for j := 0; j < m.cols; j++ {
			u, v := m.at(p.To, j), m.at(p.From, j)
			m.set(p.To, j, v)
			m.set(p.From, j, u)
		}

		return kernel.OK
	}
}

func colSwapKernel[T Element]() kernel.InPlaceFunc {
	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		if p.To < 0 || p.To >= m.cols || p.From < 0 || p.From >= m.cols {
			return StatusBadIndex
		}
		if p.To == p.From {
			return kernel.OK
		}
		for i := 0; i < m.rows; i++ {
			u, v := m.at(i, p.To), m.at(i, p.From)
			m.set(i, p.To, v)
			m.set(i, p.From, u)
		}

		return kernel.OK
	}
}

// symmetricSwapKernel applies the two-sided permutation exchanging index
// To with From: rows swapped, then columns, preserving symmetry of the
// full square storage.
func symmetricSwapKernel[T Element]() kernel.InPlaceFunc {
	rows := rowSwapKernel[T]()
	cols := colSwapKernel[T]()

	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		if m.rows != m.cols {
			return StatusNotSquare
		}
		if st := rows(p, a); st != kernel.OK {
			return st
		}

		return cols(p, a)
	}
}
