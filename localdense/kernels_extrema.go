// SPDX-License-Identifier: MIT
// Package localdense: extremum searches. All searches scan column-major
// and keep the first cell on ties, so results are deterministic. The
// vector forms report a single zero-based index in Row with Col = -1.

package localdense

import (
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// searchRegion restricts a search to the whole matrix, the uplo triangle,
// or a vector's linear span.
type searchRegion uint8

const (
	regionFull searchRegion = iota
	regionTriangle
	regionVector
)

// searchKernel scans the region and keeps the cell where better(best,
// candidate) holds strictly; value maps the winning entry to the reported
// scalar (identity for plain searches, base-typed magnitude for Abs).
func searchKernel[T Element](
	region searchRegion,
	better func(best, cand T) bool,
	value func(T) tag.Scalar,
) kernel.ExtremumFunc {
	return func(p kernel.Params, a kernel.Operand) (kernel.ValueResult, kernel.Status) {
		m, st := get[T](a)
		if st != kernel.OK {
			return kernel.ValueResult{}, st
		}
		if region == regionVector && !m.isVector() {
			return kernel.ValueResult{}, StatusNotVector
		}
		if region == regionTriangle && m.rows != m.cols {
			return kernel.ValueResult{}, StatusNotSquare
		}

		found := false
		var best T
		res := kernel.ValueResult{Row: -1, Col: -1}
		for j := 0; j < m.cols; j++ {
			for i := 0; i < m.rows; i++ {
				if region == regionTriangle && !inTrapezoid(p.Uplo, 0, i, j) {
					continue
				}
				v := m.at(i, j)
				if !found || better(best, v) {
					found, best = true, v
					res.Row, res.Col = i, j
				}
			}
		}
		if !found {
			return kernel.ValueResult{}, StatusEmpty
		}
		res.Value = value(best)
		if region == regionVector {
			// Linear index: the nonunit dimension carries it.
			if m.rows == 1 {
				res.Row = res.Col
			}
			res.Col = -1
		}

		return res, kernel.OK
	}
}

// orderedSearch builds the plain Max/Min comparators from the element
// order; only instantiated for the ordered tags.
func orderedSearch[T Element](region searchRegion, less func(a, b T) bool, wantMax bool) kernel.ExtremumFunc {
	better := func(best, cand T) bool { return less(best, cand) }
	if !wantMax {
		better = func(best, cand T) bool { return less(cand, best) }
	}

	return searchKernel[T](region, better, func(v T) tag.Scalar { return v })
}

// absSearch builds the magnitude comparators; defined for every tag and
// reporting base-typed values.
func absSearch[T Element](region searchRegion, abs2 func(T) float64, absOut func(T) tag.Scalar, wantMax bool) kernel.ExtremumFunc {
	better := func(best, cand T) bool { return abs2(best) < abs2(cand) }
	if !wantMax {
		better = func(best, cand T) bool { return abs2(cand) < abs2(best) }
	}

	return searchKernel[T](region, better, absOut)
}
