package opt

import "github.com/roach88/bfc/internal/ir"

// OffsetOp removes pointer motion inside straight-line runs.
//
// A running displacement starts at 0. MovePtr adds to it and emits nothing;
// data and I/O atoms are emitted with the displacement folded into their
// offset. Before a Loop the displacement is flushed as MovePtr and reset,
// because the loop tests the physical pointer; the body gets its own
// displacement. Every run ends with a flush, even MovePtr(0); Clean drops
// the no-op ones.
func OffsetOp(p ir.Program) ir.Program {
	out := make(ir.Program, 0, len(p)+1)
	acc := 0
	for _, a := range p {
		switch v := a.(type) {
		case ir.MovePtr:
			acc += v.Offset
		case ir.SetValue:
			out = append(out, ir.SetValue{Value: v.Value, Offset: acc + v.Offset})
		case ir.IncValue:
			out = append(out, ir.IncValue{Delta: v.Delta, Offset: acc + v.Offset})
		case ir.Print:
			out = append(out, ir.Print{Offset: acc + v.Offset})
		case ir.Read:
			out = append(out, ir.Read{Offset: acc + v.Offset})
		case ir.Loop:
			out = append(out, ir.MovePtr{Offset: acc})
			acc = 0
			out = append(out, ir.Loop{Body: OffsetOp(v.Body)})
		}
	}
	return append(out, ir.MovePtr{Offset: acc})
}
