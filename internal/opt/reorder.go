package opt

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/roach88/bfc/internal/ir"
)

// Reorder stably sorts every maximal run of data ops by offset.
//
// Barriers (MovePtr, Print, Read, Loop) stay in place. Data ops in one run
// touch only their own cells, so ops at distinct offsets commute, and the
// stable sort keeps same-offset ops in their original order.
func Reorder(p ir.Program) ir.Program {
	out := make(ir.Program, 0, len(p))
	var run ir.Program

	flush := func() {
		slices.SortStableFunc(run, func(a, b ir.Atom) int {
			return cmp.Compare(dataOffset(a), dataOffset(b))
		})
		out = append(out, run...)
		run = run[:0]
	}

	for _, a := range p {
		if l, ok := a.(ir.Loop); ok {
			a = ir.Loop{Body: Reorder(l.Body)}
		}
		if ir.IsDataOp(a) {
			run = append(run, a)
			continue
		}
		flush()
		out = append(out, a)
	}
	flush()

	return out
}

// dataOffset returns the offset of a SetValue or IncValue.
// Any other atom here is a bug in Reorder's run partitioning.
func dataOffset(a ir.Atom) int {
	switch v := a.(type) {
	case ir.SetValue:
		return v.Offset
	case ir.IncValue:
		return v.Offset
	default:
		panic(fmt.Sprintf("opt: offset of non-data atom %T", a))
	}
}
