package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/bfc/internal/ir"
)

// Engine is the reference interpreter for bfc programs.
//
// An Engine owns its tape, pointer, and I/O handles. It is not safe for
// concurrent use; it is meant to be driven by exactly one goroutine.
//
// INVARIANTS:
//   - 0 <= ptr < ir.TapeSize after every atom
//   - every tape access goes through the bounds-checked Tape accessors
type Engine struct {
	tape     Tape
	ptr      int
	in       io.ByteReader
	out      io.Writer
	quota    *QuotaEnforcer
	maxDepth int
	buf      [1]byte
}

// Option allows configuration of engine parameters.
type Option func(*Engine)

// WithMaxSteps sets the step quota. 0 (the default) means unlimited.
func WithMaxSteps(maxSteps int64) Option {
	return func(e *Engine) {
		e.quota = NewQuotaEnforcer(maxSteps)
	}
}

// WithMaxDepth sets the maximum loop nesting the engine will recurse into.
//
// Default: ir.DefaultMaxNesting
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// New creates an Engine reading from r and writing to w.
//
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader.
// A nil reader behaves as empty input; a nil writer discards output.
func New(r io.Reader, w io.Writer, opts ...Option) *Engine {
	if r == nil {
		r = strings.NewReader("")
	}
	if w == nil {
		w = io.Discard
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	e := &Engine{
		in:       br,
		out:      w,
		quota:    NewQuotaEnforcer(0),
		maxDepth: ir.DefaultMaxNesting,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Interpret runs p to completion against r and w.
// It is shorthand for New(r, w, opts...).Run(p).
func Interpret(p ir.Program, r io.Reader, w io.Writer, opts ...Option) error {
	return New(r, w, opts...).Run(p)
}

// Run executes the atoms of p in order, stopping at the first error.
func (e *Engine) Run(p ir.Program) error {
	return e.run(p, 0)
}

// Exec executes a single top-level atom.
// Streaming backends use it to run atoms as they arrive.
func (e *Engine) Exec(a ir.Atom) error {
	return e.exec(a, 0)
}

// Pointer returns the current pointer position.
func (e *Engine) Pointer() int {
	return e.ptr
}

// Cell returns the value of the cell at index i, wrapped onto the tape.
func (e *Engine) Cell(i int) uint8 {
	v, _ := e.tape.Get(ir.WrapAdd(i, 0))
	return v
}

// Steps returns the number of steps executed so far.
func (e *Engine) Steps() int64 {
	return e.quota.Current()
}

func (e *Engine) run(p ir.Program, depth int) error {
	for _, a := range p {
		if err := e.exec(a, depth); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) exec(a ir.Atom, depth int) error {
	if err := e.quota.Check(); err != nil {
		return err
	}

	switch v := a.(type) {
	case ir.MovePtr:
		e.ptr = ir.WrapAdd(e.ptr, v.Offset)
		return nil
	case ir.SetValue:
		return e.tape.Set(e.addr(v.Offset), v.Value)
	case ir.IncValue:
		i := e.addr(v.Offset)
		cur, err := e.tape.Get(i)
		if err != nil {
			return err
		}
		return e.tape.Set(i, ir.AddDelta(cur, v.Delta))
	case ir.Print:
		return e.print(v.Offset)
	case ir.Read:
		return e.read(v.Offset)
	case ir.Loop:
		return e.loop(v.Body, depth)
	default:
		panic(fmt.Sprintf("engine: unknown atom %T", a))
	}
}

// addr resolves an offset against the current pointer.
func (e *Engine) addr(offset int) int {
	return ir.WrapAdd(e.ptr, offset)
}

func (e *Engine) print(offset int) error {
	v, err := e.tape.Get(e.addr(offset))
	if err != nil {
		return err
	}
	e.buf[0] = v
	if _, err := e.out.Write(e.buf[:]); err != nil {
		return NewIOError("write", err)
	}
	return nil
}

func (e *Engine) read(offset int) error {
	c, err := e.in.ReadByte()
	if err == io.EOF {
		return NewEmptyInputError()
	}
	if err != nil {
		return NewIOError("read", err)
	}
	return e.tape.Set(e.addr(offset), c)
}

// loop runs body while the cell under the physical pointer is nonzero.
// The first test is paid for by exec; each re-test costs one more step.
func (e *Engine) loop(body ir.Program, depth int) error {
	if depth+1 > e.maxDepth {
		return NewNestingError(e.maxDepth)
	}
	for {
		cell, err := e.tape.Get(e.addr(0))
		if err != nil {
			return err
		}
		if cell == 0 {
			return nil
		}
		if err := e.run(body, depth+1); err != nil {
			return err
		}
		if err := e.quota.Check(); err != nil {
			return err
		}
	}
}
