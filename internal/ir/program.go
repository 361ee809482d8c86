package ir

// Equal reports whether two programs are structurally identical.
// A nil and an empty program are equal.
func Equal(a, b Program) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !atomEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func atomEqual(a, b Atom) bool {
	switch av := a.(type) {
	case Loop:
		bv, ok := b.(Loop)
		return ok && Equal(av.Body, bv.Body)
	default:
		// Non-loop atoms are comparable value types.
		_, isLoop := b.(Loop)
		return !isLoop && a == b
	}
}

// Depth returns the maximum loop nesting depth of p.
// A program without loops has depth 0.
func Depth(p Program) int {
	max := 0
	for _, a := range p {
		if l, ok := a.(Loop); ok {
			if d := Depth(l.Body) + 1; d > max {
				max = d
			}
		}
	}
	return max
}

// Count returns the number of atoms in p, including nested loop bodies.
// Each loop counts as one atom plus its body.
func Count(p Program) int {
	n := 0
	for _, a := range p {
		n++
		if l, ok := a.(Loop); ok {
			n += Count(l.Body)
		}
	}
	return n
}

// Clone returns a deep copy of p that shares no slices with it.
func Clone(p Program) Program {
	if p == nil {
		return nil
	}
	out := make(Program, len(p))
	for i, a := range p {
		if l, ok := a.(Loop); ok {
			out[i] = Loop{Body: Clone(l.Body)}
			continue
		}
		out[i] = a
	}
	return out
}
