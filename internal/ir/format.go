package ir

import (
	"fmt"
	"strings"
)

func (a MovePtr) String() string  { return fmt.Sprintf("MovePtr(%d)", a.Offset) }
func (a SetValue) String() string { return fmt.Sprintf("SetValue(%d, %d)", a.Value, a.Offset) }
func (a IncValue) String() string { return fmt.Sprintf("IncValue(%d, %d)", a.Delta, a.Offset) }
func (a Print) String() string    { return fmt.Sprintf("Print(%d)", a.Offset) }
func (a Read) String() string     { return fmt.Sprintf("Read(%d)", a.Offset) }

// String renders the loop on one line, e.g. "Loop[IncValue(-1, 0)]".
func (a Loop) String() string {
	parts := make([]string, len(a.Body))
	for i, sub := range a.Body {
		parts[i] = fmt.Sprint(sub)
	}
	return "Loop[" + strings.Join(parts, ", ") + "]"
}

// String renders the program as a multi-line listing (see Format).
func (p Program) String() string {
	return Format(p)
}

// Format renders p as a listing with one atom per line.
// Loop bodies are indented by two spaces between "Loop [" and "]".
// The listing is for humans and golden files; it is never parsed back.
func Format(p Program) string {
	var b strings.Builder
	writeListing(&b, p, 0)
	return b.String()
}

func writeListing(b *strings.Builder, p Program, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, a := range p {
		if l, ok := a.(Loop); ok {
			b.WriteString(indent)
			b.WriteString("Loop [\n")
			writeListing(b, l.Body, depth+1)
			b.WriteString(indent)
			b.WriteString("]\n")
			continue
		}
		b.WriteString(indent)
		fmt.Fprint(b, a)
		b.WriteByte('\n')
	}
}
