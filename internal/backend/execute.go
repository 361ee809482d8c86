package backend

import (
	"fmt"
	"io"

	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

// Backend names accepted by Execute.
const (
	NameInterpreter = "interpreter"
	NameJIT         = "jit"
)

// Executable lists the backends that can run a program in-process.
func Executable() []string {
	return []string{NameInterpreter, NameJIT}
}

// ExecOptions tunes Execute.
type ExecOptions struct {
	MaxSteps int64 // 0 = unlimited
	MaxDepth int   // interpreter only; 0 = ir.DefaultMaxNesting
	Optimize bool  // jit only: apply Module.Optimize before running
}

// Execute runs p on the named in-process backend.
//
// The returned Stats are valid even when err is non-nil.
func Execute(name string, p ir.Program, r io.Reader, w io.Writer, o ExecOptions) (Stats, error) {
	switch name {
	case NameInterpreter:
		opts := []engine.Option{engine.WithMaxSteps(o.MaxSteps)}
		if o.MaxDepth > 0 {
			opts = append(opts, engine.WithMaxDepth(o.MaxDepth))
		}
		b := NewInterpreter(r, w, opts...)
		_, err := Dispatch[Unit](b, p)
		return Stats{Steps: b.Engine().Steps(), Pointer: b.Engine().Pointer()}, err
	case NameJIT:
		m, err := Dispatch[*Module](NewJIT(), p)
		if err != nil {
			return Stats{}, err
		}
		if o.Optimize {
			m.Optimize()
		}
		m.MaxSteps = o.MaxSteps
		return m.Run(r, w)
	default:
		return Stats{}, fmt.Errorf("unknown backend %q (want one of %v)", name, Executable())
	}
}
