package ir

// TapeSize is the number of cells on the circular tape.
// Pointer arithmetic wraps modulo TapeSize, cell arithmetic modulo 256.
const TapeSize = 30000

// DefaultMaxNesting bounds loop nesting for the builder and the engine.
const DefaultMaxNesting = 1024

// Atom is a sealed interface representing one IR instruction.
// Only MovePtr, SetValue, IncValue, Print, Read, and Loop implement it.
type Atom interface {
	atom() // Sealed - only these types implement it
}

// MovePtr shifts the active pointer by a signed displacement.
type MovePtr struct {
	Offset int
}

func (MovePtr) atom() {}

// SetValue writes a literal byte into the cell at pointer+Offset.
type SetValue struct {
	Value  uint8
	Offset int
}

func (SetValue) atom() {}

// IncValue adds Delta (mod 256) into the cell at pointer+Offset.
type IncValue struct {
	Delta  int8
	Offset int
}

func (IncValue) atom() {}

// Print emits the byte at pointer+Offset to the output sink.
type Print struct {
	Offset int
}

func (Print) atom() {}

// Read consumes one input byte into the cell at pointer+Offset.
type Read struct {
	Offset int
}

func (Read) atom() {}

// Loop repeats Body while the cell under the physical pointer is nonzero.
// The condition is always tested at offset 0.
type Loop struct {
	Body Program
}

func (Loop) atom() {}

// Program is an ordered sequence of atoms. Loop bodies are Programs,
// so a Program is a tree whose depth is the source nesting depth.
type Program []Atom

// Offset returns the cell displacement of an offset-bearing atom.
// MovePtr and Loop report false: MovePtr's field is a pointer shift,
// and a loop always tests offset 0.
func Offset(a Atom) (int, bool) {
	switch v := a.(type) {
	case SetValue:
		return v.Offset, true
	case IncValue:
		return v.Offset, true
	case Print:
		return v.Offset, true
	case Read:
		return v.Offset, true
	default:
		return 0, false
	}
}

// IsDataOp reports whether a is a pure data op (SetValue or IncValue).
// Data ops touch only their own cell and have no control or I/O effect.
func IsDataOp(a Atom) bool {
	switch a.(type) {
	case SetValue, IncValue:
		return true
	default:
		return false
	}
}

// WrapAdd returns (ptr + offset) mod TapeSize, always in [0, TapeSize).
func WrapAdd(ptr, offset int) int {
	i := (ptr + offset) % TapeSize
	if i < 0 {
		i += TapeSize
	}
	return i
}

// AddDelta adds a signed delta to a cell value with wraparound.
func AddDelta(v uint8, d int8) uint8 {
	return v + uint8(d)
}
