// SPDX-License-Identifier: MIT
// Package localdense: callback-driven kernels. The engine has already
// pinned the callback's dynamic type to the operand tag, so each kernel
// asserts it exactly once and then calls it directly per entry,
// column-major.

package localdense

import "github.com/savrin-dev/matdispatch/kernel"

func entrywiseFillKernel[T Element]() kernel.FillMapFunc {
	return func(_ kernel.Params, a kernel.Operand, cb any) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		fn, ok := cb.(func() T)
		if !ok {
			return StatusBadCallback
		}
		for i := range m.data {
			m.data[i] = fn()
		}

		return kernel.OK
	}
}

func entrywiseMapKernel[T Element]() kernel.FillMapFunc {
	return func(_ kernel.Params, a kernel.Operand, cb any) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		fn, ok := cb.(func(T) T)
		if !ok {
			return StatusBadCallback
		}
		for i := range m.data {
			m.data[i] = fn(m.data[i])
		}

		return kernel.OK
	}
}

func indexFillKernel[T Element]() kernel.FillMapFunc {
	return func(_ kernel.Params, a kernel.Operand, cb any) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		fn, ok := cb.(func(int, int) T)
		if !ok {
			return StatusBadCallback
		}
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				m.set(i, j, fn(i, j))
			}
		}

		return kernel.OK
	}
}

func indexMapKernel[T Element]() kernel.FillMapFunc {
	return func(_ kernel.Params, a kernel.Operand, cb any) kernel.Status {
		m, st := get[T](a)
		if st != kernel.OK {
			return st
		}
		fn, ok := cb.(func(int, int, T) T)
		if !ok {
			return StatusBadCallback
		}
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				m.set(i, j, fn(i, j, m.at(i, j)))
			}
		}

		return kernel.OK
	}
}
