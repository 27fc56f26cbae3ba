// SPDX-License-Identifier: MIT

package localdense

// Option mutates a freshly allocated Dense during New. Options run in
// declaration order; later options observe the effect of earlier ones.
type Option[T Element] func(*Dense[T]) error

// WithFill initializes every entry to v.
func WithFill[T Element](v T) Option[T] {
	return func(m *Dense[T]) error {
		for i := range m.data {
			m.data[i] = v
		}

		return nil
	}
}

// WithData copies a column-major backing slice into the matrix.
// len(data) must equal rows*cols; ErrBadDataLength otherwise.
func WithData[T Element](data []T) Option[T] {
	return func(m *Dense[T]) error {
		if len(data) != len(m.data) {
			return ErrBadDataLength
		}
		copy(m.data, data)

		return nil
	}
}

// WithDiagonal initializes the main diagonal to v, leaving the rest zero.
func WithDiagonal[T Element](v T) Option[T] {
	return func(m *Dense[T]) error {
		n := m.rows
		if m.cols < n {
			n = m.cols
		}
		for k := 0; k < n; k++ {
			m.set(k, k, v)
		}

		return nil
	}
}
