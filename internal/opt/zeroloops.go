package opt

import "github.com/roach88/bfc/internal/ir"

// decrement is the only body zero_loops recognizes: [-].
var decrement = ir.Program{ir.IncValue{Delta: -1, Offset: 0}}

// ZeroLoops replaces loops whose body is exactly IncValue(-1, 0) with
// SetValue(0, 0). Nested bodies are rewritten first, so the check sees
// the already-rewritten body.
func ZeroLoops(p ir.Program) ir.Program {
	out := make(ir.Program, 0, len(p))
	for _, a := range p {
		if l, ok := a.(ir.Loop); ok {
			body := ZeroLoops(l.Body)
			if ir.Equal(body, decrement) {
				out = append(out, ir.SetValue{Value: 0, Offset: 0})
				continue
			}
			a = ir.Loop{Body: body}
		}
		out = append(out, a)
	}
	return out
}
