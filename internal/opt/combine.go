package opt

import "github.com/roach88/bfc/internal/ir"

// Combine fuses adjacent atoms, recursing into loop bodies first.
//
// Fusion rules (equal offsets required for the data ops):
//
//	MovePtr(a)    + MovePtr(b)    -> MovePtr(a+b)
//	IncValue(a,o) + IncValue(b,o) -> IncValue(a+b,o)
//	IncValue(_,o) + SetValue(v,o) -> SetValue(v,o)
//	SetValue(v,o) + IncValue(d,o) -> SetValue(v+d,o)
//	SetValue(_,o) + SetValue(v,o) -> SetValue(v,o)
//
// This is a single left-to-right fold: only atoms made adjacent by an
// earlier fusion are considered again.
func Combine(p ir.Program) ir.Program {
	mapped := make(ir.Program, 0, len(p))
	for _, a := range p {
		if l, ok := a.(ir.Loop); ok {
			a = ir.Loop{Body: Combine(l.Body)}
		}
		mapped = append(mapped, a)
	}
	return coalesce(mapped, fuse)
}

// coalesce folds p left to right, carrying one pending atom. When merge
// succeeds the result becomes the pending atom; otherwise the pending atom
// is flushed and the fold restarts from the right-hand atom.
func coalesce(p ir.Program, merge func(a, b ir.Atom) (ir.Atom, bool)) ir.Program {
	out := make(ir.Program, 0, len(p))
	var pending ir.Atom
	for _, a := range p {
		if pending == nil {
			pending = a
			continue
		}
		if m, ok := merge(pending, a); ok {
			pending = m
			continue
		}
		out = append(out, pending)
		pending = a
	}
	if pending != nil {
		out = append(out, pending)
	}
	return out
}

func fuse(a, b ir.Atom) (ir.Atom, bool) {
	switch av := a.(type) {
	case ir.MovePtr:
		if bv, ok := b.(ir.MovePtr); ok {
			return ir.MovePtr{Offset: av.Offset + bv.Offset}, true
		}
	case ir.IncValue:
		switch bv := b.(type) {
		case ir.IncValue:
			if av.Offset == bv.Offset {
				return ir.IncValue{Delta: av.Delta + bv.Delta, Offset: av.Offset}, true
			}
		case ir.SetValue:
			if av.Offset == bv.Offset {
				return bv, true
			}
		}
	case ir.SetValue:
		switch bv := b.(type) {
		case ir.IncValue:
			if av.Offset == bv.Offset {
				return ir.SetValue{Value: ir.AddDelta(av.Value, bv.Delta), Offset: av.Offset}, true
			}
		case ir.SetValue:
			if av.Offset == bv.Offset {
				return bv, true
			}
		}
	}
	return nil, false
}
