package opt

import "github.com/roach88/bfc/internal/ir"

// Clean drops atoms with no observable effect: MovePtr(0) and
// IncValue(0, _). Everything else, and the order, is preserved.
func Clean(p ir.Program) ir.Program {
	out := make(ir.Program, 0, len(p))
	for _, a := range p {
		switch v := a.(type) {
		case ir.MovePtr:
			if v.Offset == 0 {
				continue
			}
		case ir.IncValue:
			if v.Delta == 0 {
				continue
			}
		case ir.Loop:
			out = append(out, ir.Loop{Body: Clean(v.Body)})
			continue
		}
		out = append(out, a)
	}
	return out
}
