package engine

import "github.com/roach88/bfc/internal/ir"

// Tape is the fixed-size memory of the machine.
//
// Every access goes through Get/Set, which bounds-check the index. Callers
// resolve addresses with ir.WrapAdd, so an out-of-range index means the
// address arithmetic is broken, not that the program misbehaved.
type Tape struct {
	cells [ir.TapeSize]uint8
}

// Get returns the cell at index i.
func (t *Tape) Get(i int) (uint8, error) {
	if i < 0 || i >= len(t.cells) {
		return 0, NewIndexError(i)
	}
	return t.cells[i], nil
}

// Set writes v into the cell at index i.
func (t *Tape) Set(i int, v uint8) error {
	if i < 0 || i >= len(t.cells) {
		return NewIndexError(i)
	}
	t.cells[i] = v
	return nil
}

// Reset zeroes every cell.
func (t *Tape) Reset() {
	t.cells = [ir.TapeSize]uint8{}
}
