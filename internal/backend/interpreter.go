package backend

import (
	"io"

	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

// Interpreter executes a program while it is being visited.
//
// Top-level atoms run as soon as they arrive. Atoms inside a loop are
// buffered until the outermost loop closes, then the whole loop runs.
type Interpreter struct {
	engine *engine.Engine
	open   []ir.Program
}

var _ Backend[Unit] = (*Interpreter)(nil)

// NewInterpreter returns an interpreter backend reading r and writing w.
func NewInterpreter(r io.Reader, w io.Writer, opts ...engine.Option) *Interpreter {
	return &Interpreter{engine: engine.New(r, w, opts...)}
}

// Name implements Namer.
func (b *Interpreter) Name() string { return "interpreter" }

// Engine exposes the underlying engine, for pointer and step inspection.
func (b *Interpreter) Engine() *engine.Engine { return b.engine }

func (b *Interpreter) MovePtr(offset int) error {
	return b.emit(ir.MovePtr{Offset: offset})
}

func (b *Interpreter) SetValue(value uint8, offset int) error {
	return b.emit(ir.SetValue{Value: value, Offset: offset})
}

func (b *Interpreter) IncValue(delta int8, offset int) error {
	return b.emit(ir.IncValue{Delta: delta, Offset: offset})
}

func (b *Interpreter) Print(offset int) error {
	return b.emit(ir.Print{Offset: offset})
}

func (b *Interpreter) Read(offset int) error {
	return b.emit(ir.Read{Offset: offset})
}

func (b *Interpreter) EnterLoop() error {
	b.open = append(b.open, ir.Program{})
	return nil
}

func (b *Interpreter) ExitLoop() error {
	n := len(b.open)
	if n == 0 {
		return ErrUnbalanced
	}
	body := b.open[n-1]
	b.open = b.open[:n-1]
	return b.emit(ir.Loop{Body: body})
}

// Finish fails if a loop is still open.
func (b *Interpreter) Finish() (Unit, error) {
	if len(b.open) > 0 {
		return Unit{}, ErrUnbalanced
	}
	return Unit{}, nil
}

func (b *Interpreter) emit(a ir.Atom) error {
	n := len(b.open)
	if n == 0 {
		return b.engine.Exec(a)
	}
	b.open[n-1] = append(b.open[n-1], a)
	return nil
}
