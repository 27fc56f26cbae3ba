// SPDX-License-Identifier: MIT
// Package distdense: table derivation. Every Local entry is wrapped into
// a Distributed one; the wrapper picks the per-shard parallel path for
// row-aligned operations and the gather/run/scatter path otherwise.

package distdense

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// Operations safe to run independently per row block: they never read a
// global row index and mutate each cell from that cell alone.
var (
	alignedInPlace = map[kernel.Op]bool{
		kernel.OpScale:     true,
		kernel.OpFill:      true,
		kernel.OpZero:      true,
		kernel.OpConjugate: true,
	}
	alignedElementwise = map[kernel.Op]bool{
		kernel.OpAxpy:     true,
		kernel.OpHadamard: true,
	}
)

// shardError carries a shard's kernel status across the errgroup boundary.
type shardError kernel.Status

func (e shardError) Error() string {
	return fmt.Sprintf("distdense: shard kernel status %d", kernel.Status(e))
}

// runShards executes f once per shard concurrently and reports the first
// non-OK status.
func runShards(n int, f func(k int) kernel.Status) kernel.Status {
	var g errgroup.Group
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			if st := f(k); st != kernel.OK {
				return shardError(st)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var se shardError
		if errors.As(err, &se) {
			return kernel.Status(se)
		}
		return StatusBadOperand
	}

	return kernel.OK
}

// alignedShards reports whether every operand is sharded with an
// identical row partition.
func alignedShards(ops []kernel.Operand) ([]sharded, bool) {
	ms := make([]sharded, len(ops))
	var ref []int
	for i, o := range ops {
		m, ok := o.(sharded)
		if !ok {
			return nil, false
		}
		hs := m.heights()
		if i == 0 {
			ref = hs
		} else if len(hs) != len(ref) {
			return nil, false
		} else {
			for k := range hs {
				if hs[k] != ref[k] {
					return nil, false
				}
			}
		}
		ms[i] = m
	}

	return ms, true
}

func wrapInPlace(op kernel.Op, fn kernel.InPlaceFunc) kernel.InPlaceFunc {
	if alignedInPlace[op] {
		return func(p kernel.Params, a kernel.Operand) kernel.Status {
			m, ok := a.(sharded)
			if !ok {
				return StatusBadOperand
			}

			return runShards(m.numShards(), func(k int) kernel.Status {
				return fn(p, m.shardOperand(k))
			})
		}
	}

	return func(p kernel.Params, a kernel.Operand) kernel.Status {
		g, ok := a.(gatherer)
		if !ok {
			return StatusBadOperand
		}
		loc := g.gatherLocal()
		if st := fn(p, loc); st != kernel.OK {
			return st
		}

		return g.scatterLocal(loc)
	}
}

func wrapElementwise(op kernel.Op, fn kernel.ElementwiseFunc) kernel.ElementwiseFunc {
	return func(p kernel.Params, ops []kernel.Operand) kernel.Status {
		if alignedElementwise[op] {
			if ms, ok := alignedShards(ops); ok {
				return runShards(ms[0].numShards(), func(k int) kernel.Status {
					sub := make([]kernel.Operand, len(ms))
					for i, m := range ms {
						sub[i] = m.shardOperand(k)
					}
					return fn(p, sub)
				})
			}
		}

		gs := make([]gatherer, len(ops))
		locs := make([]kernel.Operand, len(ops))
		for i, o := range ops {
			g, ok := o.(gatherer)
			if !ok {
				return StatusBadOperand
			}
			gs[i] = g
			locs[i] = g.gatherLocal()
		}
		if st := fn(p, locs); st != kernel.OK {
			return st
		}
		for i, g := range gs {
			if st := g.scatterLocal(locs[i]); st != kernel.OK {
				return st
			}
		}

		return kernel.OK
	}
}

func wrapReduce(fn kernel.ReduceFunc) kernel.ReduceFunc {
	return func(p kernel.Params, ops []kernel.Operand) (tag.Scalar, kernel.Status) {
		locs := make([]kernel.Operand, len(ops))
		for i, o := range ops {
			g, ok := o.(gatherer)
			if !ok {
				return nil, StatusBadOperand
			}
			locs[i] = g.gatherLocal()
		}

		return fn(p, locs)
	}
}

func wrapExtremum(fn kernel.ExtremumFunc) kernel.ExtremumFunc {
	return func(p kernel.Params, a kernel.Operand) (kernel.ValueResult, kernel.Status) {
		g, ok := a.(gatherer)
		if !ok {
			return kernel.ValueResult{}, StatusBadOperand
		}

		// Gathering reconstructs global coordinates, so the reported
		// position needs no translation.
		return fn(p, g.gatherLocal())
	}
}

func wrapFillMap(fn kernel.FillMapFunc) kernel.FillMapFunc {
	return func(p kernel.Params, a kernel.Operand, cb any) kernel.Status {
		g, ok := a.(gatherer)
		if !ok {
			return StatusBadOperand
		}
		loc := g.gatherLocal()
		if st := fn(p, loc, cb); st != kernel.OK {
			return st
		}

		return g.scatterLocal(loc)
	}
}

// NewTable derives a combined kernel table from a sealed Local one: every
// Local entry is carried over unchanged and additionally wrapped under the
// Distributed storage kind, so one engine serves both operand kinds and
// the two support matrices mirror each other key for key.
func NewTable(local *kernel.Table) (*kernel.Table, error) {
	if local == nil {
		return nil, kernel.ErrNilTable
	}
	b := kernel.NewBuilder()
	var err error
	local.Range(func(k kernel.Key, e kernel.Entry) bool {
		if k.Storage != tag.Local {
			return true
		}
		if err = registerEntry(b, k, e); err != nil {
			return false
		}
		dk := k
		dk.Storage = tag.Distributed

		var fn any
		switch e.Shape() {
		case kernel.ShapeInPlace:
			f, _ := e.InPlace()
			fn = wrapInPlace(k.Op, f)
		case kernel.ShapeElementwise:
			f, _ := e.Elementwise()
			fn = wrapElementwise(k.Op, f)
		case kernel.ShapeReduce:
			f, _ := e.Reduce()
			fn = wrapReduce(f)
		case kernel.ShapeExtremum:
			f, _ := e.Extremum()
			fn = wrapExtremum(f)
		case kernel.ShapeFillMap:
			f, _ := e.FillMap()
			fn = wrapFillMap(f)
		}
		err = b.Register(dk, e.Shape(), fn)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// registerEntry re-registers an already sealed entry under its own key.
func registerEntry(b *kernel.Builder, k kernel.Key, e kernel.Entry) error {
	switch e.Shape() {
	case kernel.ShapeInPlace:
		f, _ := e.InPlace()
		return b.Register(k, e.Shape(), f)
	case kernel.ShapeElementwise:
		f, _ := e.Elementwise()
		return b.Register(k, e.Shape(), f)
	case kernel.ShapeReduce:
		f, _ := e.Reduce()
		return b.Register(k, e.Shape(), f)
	case kernel.ShapeExtremum:
		f, _ := e.Extremum()
		return b.Register(k, e.Shape(), f)
	default:
		f, _ := e.FillMap()
		return b.Register(k, e.Shape(), f)
	}
}
