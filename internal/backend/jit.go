package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

// Op is a flat-code opcode.
type Op uint8

const (
	OpMove          Op = iota + 1 // ptr += Arg
	OpSet                         // cell[Arg] = Value
	OpInc                         // cell[Arg] += Value
	OpPrint                       // write cell[Arg]
	OpRead                        // cell[Arg] = next input byte
	OpJumpIfZero                  // if cell[0] == 0, pc = Target
	OpJumpIfNonZero               // if cell[0] != 0, pc = Target
	OpScan                        // ptr += Arg until cell[0] == 0
)

var opNames = map[Op]string{
	OpMove:          "move",
	OpSet:           "set",
	OpInc:           "inc",
	OpPrint:         "print",
	OpRead:          "read",
	OpJumpIfZero:    "jz",
	OpJumpIfNonZero: "jnz",
	OpScan:          "scan",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Instr is one flat-code instruction.
//
// Arg is the pointer displacement for OpMove and OpScan and the cell
// offset otherwise. Value holds the literal for OpSet and the two's
// complement delta for OpInc.
type Instr struct {
	Op     Op
	Arg    int
	Value  uint8
	Target int
}

// Module is a program lowered to flat code with resolved jump targets.
//
// Run executes it iteratively, so loop nesting costs no stack. For an
// unoptimized module the step count matches the engine's exactly.
type Module struct {
	Code     []Instr
	MaxSteps int64 // 0 = unlimited
}

// Stats reports the machine state after Run.
type Stats struct {
	Steps   int64
	Pointer int
}

// JIT lowers a program into a Module.
type JIT struct {
	code []Instr
	open []int
}

var _ Backend[*Module] = (*JIT)(nil)

// NewJIT returns an empty jit backend.
func NewJIT() *JIT {
	return &JIT{}
}

// Name implements Namer.
func (b *JIT) Name() string { return "jit" }

func (b *JIT) MovePtr(offset int) error {
	b.code = append(b.code, Instr{Op: OpMove, Arg: offset})
	return nil
}

func (b *JIT) SetValue(value uint8, offset int) error {
	b.code = append(b.code, Instr{Op: OpSet, Arg: offset, Value: value})
	return nil
}

func (b *JIT) IncValue(delta int8, offset int) error {
	b.code = append(b.code, Instr{Op: OpInc, Arg: offset, Value: uint8(delta)})
	return nil
}

func (b *JIT) Print(offset int) error {
	b.code = append(b.code, Instr{Op: OpPrint, Arg: offset})
	return nil
}

func (b *JIT) Read(offset int) error {
	b.code = append(b.code, Instr{Op: OpRead, Arg: offset})
	return nil
}

func (b *JIT) EnterLoop() error {
	b.open = append(b.open, len(b.code))
	b.code = append(b.code, Instr{Op: OpJumpIfZero})
	return nil
}

func (b *JIT) ExitLoop() error {
	n := len(b.open)
	if n == 0 {
		return ErrUnbalanced
	}
	start := b.open[n-1]
	b.open = b.open[:n-1]

	end := len(b.code)
	b.code = append(b.code, Instr{Op: OpJumpIfNonZero, Target: start + 1})
	b.code[start].Target = end + 1
	return nil
}

// Finish returns the lowered module.
func (b *JIT) Finish() (*Module, error) {
	if len(b.open) > 0 {
		return nil, ErrUnbalanced
	}
	return &Module{Code: b.code}, nil
}

// Optimize rewrites two loop shapes in place:
//
//	[>] [<] and any loop whose body is one MovePtr  ->  scan
//	[-] [+]                                           ->  set 0
//
// Jump targets are re-resolved afterwards.
func (m *Module) Optimize() {
	out := make([]Instr, 0, len(m.Code))
	for i := 0; i < len(m.Code); i++ {
		in := m.Code[i]
		if in.Op == OpJumpIfZero && i+2 < len(m.Code) && m.Code[i+2].Op == OpJumpIfNonZero {
			body := m.Code[i+1]
			switch {
			case body.Op == OpMove && body.Arg != 0:
				out = append(out, Instr{Op: OpScan, Arg: body.Arg})
				i += 2
				continue
			case body.Op == OpInc && body.Arg == 0 && (body.Value == 1 || body.Value == 0xff):
				out = append(out, Instr{Op: OpSet})
				i += 2
				continue
			}
		}
		out = append(out, in)
	}
	m.Code = link(out)
}

// link recomputes the targets of every jump pair in code.
func link(code []Instr) []Instr {
	var open []int
	for i := range code {
		switch code[i].Op {
		case OpJumpIfZero:
			open = append(open, i)
		case OpJumpIfNonZero:
			start := open[len(open)-1]
			open = open[:len(open)-1]
			code[start].Target = i + 1
			code[i].Target = start + 1
		}
	}
	return code
}

// Run executes the module against r and w on a fresh tape.
//
// Errors are the engine's: *engine.ExecutionError for input, output and
// tape failures, *engine.StepsExceededError when MaxSteps is exceeded.
func (m *Module) Run(r io.Reader, w io.Writer) (Stats, error) {
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

	mc := &machine{
		in:    br,
		out:   w,
		quota: engine.NewQuotaEnforcer(m.MaxSteps),
	}
	err := mc.run(m.Code)
	return Stats{Steps: mc.quota.Current(), Pointer: mc.ptr}, err
}

type machine struct {
	tape  engine.Tape
	ptr   int
	in    io.ByteReader
	out   io.Writer
	quota *engine.QuotaEnforcer
	buf   [1]byte
}

func (mc *machine) run(code []Instr) error {
	for pc := 0; pc < len(code); pc++ {
		if err := mc.quota.Check(); err != nil {
			return err
		}

		in := code[pc]
		switch in.Op {
		case OpMove:
			mc.ptr = ir.WrapAdd(mc.ptr, in.Arg)
		case OpSet:
			if err := mc.tape.Set(ir.WrapAdd(mc.ptr, in.Arg), in.Value); err != nil {
				return err
			}
		case OpInc:
			i := ir.WrapAdd(mc.ptr, in.Arg)
			v, err := mc.tape.Get(i)
			if err != nil {
				return err
			}
			if err := mc.tape.Set(i, v+in.Value); err != nil {
				return err
			}
		case OpPrint:
			if err := mc.print(in.Arg); err != nil {
				return err
			}
		case OpRead:
			if err := mc.read(in.Arg); err != nil {
				return err
			}
		case OpJumpIfZero, OpJumpIfNonZero:
			v, err := mc.tape.Get(mc.ptr)
			if err != nil {
				return err
			}
			if (v == 0) == (in.Op == OpJumpIfZero) {
				pc = in.Target - 1
			}
		case OpScan:
			if err := mc.scan(in.Arg); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("jit: unknown opcode %v at %d", in.Op, pc))
		}
	}
	return nil
}

func (mc *machine) print(offset int) error {
	v, err := mc.tape.Get(ir.WrapAdd(mc.ptr, offset))
	if err != nil {
		return err
	}
	mc.buf[0] = v
	if _, err := mc.out.Write(mc.buf[:]); err != nil {
		return engine.NewIOError("write", err)
	}
	return nil
}

func (mc *machine) read(offset int) error {
	c, err := mc.in.ReadByte()
	if err == io.EOF {
		return engine.NewEmptyInputError()
	}
	if err != nil {
		return engine.NewIOError("read", err)
	}
	return mc.tape.Set(ir.WrapAdd(mc.ptr, offset), c)
}

// scan charges one step per cell moved over.
func (mc *machine) scan(step int) error {
	for {
		v, err := mc.tape.Get(mc.ptr)
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
		if err := mc.quota.Check(); err != nil {
			return err
		}
		mc.ptr = ir.WrapAdd(mc.ptr, step)
	}
}
