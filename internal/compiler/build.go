package compiler

import (
	"fmt"

	"github.com/roach88/bfc/internal/ir"
)

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	filename   string
	maxNesting int
}

// WithFilename sets the filename reported in error positions.
func WithFilename(name string) Option {
	return func(c *buildConfig) {
		c.filename = name
	}
}

// WithMaxNesting bounds loop nesting. Deeper sources fail with
// ErrCodeNestingTooDeep instead of building an unbounded tree.
//
// Default: ir.DefaultMaxNesting
func WithMaxNesting(n int) Option {
	return func(c *buildConfig) {
		c.maxNesting = n
	}
}

// frame is an open loop: the program it will be appended to, and where it began.
type frame struct {
	parent ir.Program
	pos    Pos
}

// Build turns source bytes into the initial, unoptimized IR.
//
// The build is a single left-to-right scan with bracket matching:
//
//	>  MovePtr(1)      <  MovePtr(-1)
//	+  IncValue(1, 0)   -  IncValue(-1, 0)
//	.  Print(0)         ,  Read(0)
//	[ ... ]  Loop
//
// Every other byte is a comment. All offsets in the result are 0; pointer
// motion is always an explicit MovePtr.
func Build(src []byte, opts ...Option) (ir.Program, error) {
	cfg := buildConfig{maxNesting: ir.DefaultMaxNesting}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		stack []frame
		cur   = ir.Program{}
		line  = 1
		col   = 1
	)

	for i, c := range src {
		pos := Pos{Filename: cfg.filename, Line: line, Column: col, Offset: i}

		switch c {
		case '>':
			cur = append(cur, ir.MovePtr{Offset: 1})
		case '<':
			cur = append(cur, ir.MovePtr{Offset: -1})
		case '+':
			cur = append(cur, ir.IncValue{Delta: 1})
		case '-':
			cur = append(cur, ir.IncValue{Delta: -1})
		case '.':
			cur = append(cur, ir.Print{})
		case ',':
			cur = append(cur, ir.Read{})
		case '[':
			if len(stack) >= cfg.maxNesting {
				return nil, &CompileError{
					Code:    ErrCodeNestingTooDeep,
					Message: fmt.Sprintf("loop nesting exceeds %d", cfg.maxNesting),
					Pos:     pos,
				}
			}
			stack = append(stack, frame{parent: cur, pos: pos})
			cur = ir.Program{}
		case ']':
			if len(stack) == 0 {
				return nil, &CompileError{
					Code:    ErrCodeUnmatchedClose,
					Message: "']' without matching '['",
					Pos:     pos,
				}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cur = append(top.parent, ir.Loop{Body: cur})
		}

		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	if len(stack) > 0 {
		return nil, &CompileError{
			Code:    ErrCodeUnmatchedOpen,
			Message: "'[' without matching ']'",
			Pos:     stack[len(stack)-1].pos,
		}
	}

	return cur, nil
}

// BuildString is Build for string sources.
func BuildString(src string, opts ...Option) (ir.Program, error) {
	return Build([]byte(src), opts...)
}

// MustBuild is like BuildString but panics on error.
// Use only in tests or when the source is known to be valid.
func MustBuild(src string) ir.Program {
	p, err := BuildString(src)
	if err != nil {
		panic(err)
	}
	return p
}
