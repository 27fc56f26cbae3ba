// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savrin-dev/matdispatch/dispatch"
	"github.com/savrin-dev/matdispatch/kernel"
	"github.com/savrin-dev/matdispatch/tag"
)

// fillEngine registers an accepting fill/map stub for every datatype so
// the pinning checks are the only thing under test.
func fillEngine(t *testing.T) *dispatch.Engine {
	t.Helper()
	b := kernel.NewBuilder()
	ops := []kernel.Op{
		kernel.OpEntrywiseFill, kernel.OpEntrywiseMap,
		kernel.OpIndexFill, kernel.OpIndexMap,
	}
	for _, op := range ops {
		for _, d := range []tag.Datatype{
			tag.Integer32, tag.Real32, tag.Real64, tag.Complex64, tag.Complex128,
		} {
			err := b.Register(kernel.Key{Op: op, Dtype: d, Storage: tag.Local},
				kernel.ShapeFillMap,
				kernel.FillMapFunc(func(kernel.Params, kernel.Operand, any) kernel.Status {
					return kernel.OK
				}))
			require.NoError(t, err)
		}
	}
	eng, err := dispatch.New(b.Build())
	require.NoError(t, err)

	return eng
}

func TestCallbackPinning(t *testing.T) {
	eng := fillEngine(t)

	call := func(name string, a dispatch.Operand, cb any) error {
		switch name {
		case "EntrywiseFill":
			return eng.EntrywiseFill(a, cb)
		case "EntrywiseMap":
			return eng.EntrywiseMap(a, cb)
		case "IndexDependentFill":
			return eng.IndexDependentFill(a, cb)
		default:
			return eng.IndexDependentMap(a, cb)
		}
	}

	cases := []struct {
		name  string
		d     tag.Datatype
		good  any
		wrong any
	}{
		{"EntrywiseFill", tag.Integer32,
			func() int32 { return 0 }, func() int { return 0 }},
		{"EntrywiseFill", tag.Complex64,
			func() complex64 { return 0 }, func() complex128 { return 0 }},
		{"EntrywiseMap", tag.Real32,
			func(v float32) float32 { return v }, func(v float64) float64 { return v }},
		{"EntrywiseMap", tag.Complex128,
			func(v complex128) complex128 { return v }, func() complex128 { return 0 }},
		{"IndexDependentFill", tag.Real64,
			func(i, j int) float64 { return 0 }, func(i, j int32) float64 { return 0 }},
		{"IndexDependentMap", tag.Integer32,
			func(i, j int, v int32) int32 { return v }, func(i, j int, v int64) int64 { return v }},
		{"IndexDependentMap", tag.Complex64,
			func(i, j int, v complex64) complex64 { return v },
			func(i, j int, v complex64) complex128 { return 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name+"/"+tc.d.String(), func(t *testing.T) {
			a := &stubOperand{d: tc.d, st: tag.Local}

			require.NoError(t, call(tc.name, a, tc.good))
			require.ErrorIs(t, call(tc.name, a, tc.wrong), dispatch.ErrDatatypeMismatch)
			require.ErrorIs(t, call(tc.name, a, nil), dispatch.ErrInvalidArgument)
		})
	}
}
