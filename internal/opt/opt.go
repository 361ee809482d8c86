package opt

import (
	"context"
	"log/slog"

	"github.com/roach88/bfc/internal/ir"
)

// Pass is a named program rewrite.
type Pass struct {
	Name string
	Fn   func(ir.Program) ir.Program
}

// Pipeline is an ordered list of passes applied once each.
type Pipeline []Pass

// DefaultPipeline returns the standard pass order.
// combine and clean run again at the end to fuse what offset_op and
// reorder made adjacent.
func DefaultPipeline() Pipeline {
	return Pipeline{
		{Name: "combine", Fn: Combine},
		{Name: "clean", Fn: Clean},
		{Name: "zero_loops", Fn: ZeroLoops},
		{Name: "offset_op", Fn: OffsetOp},
		{Name: "reorder", Fn: Reorder},
		{Name: "combine", Fn: Combine},
		{Name: "clean", Fn: Clean},
	}
}

// Run applies every pass in order and returns the rewritten program.
func (pl Pipeline) Run(p ir.Program) ir.Program {
	debug := slog.Default().Enabled(context.Background(), slog.LevelDebug)
	for _, pass := range pl {
		before := 0
		if debug {
			before = ir.Count(p)
		}
		p = pass.Fn(p)
		if debug {
			slog.Debug("optimization pass", "pass", pass.Name, "atoms_before", before, "atoms_after", ir.Count(p))
		}
	}
	return p
}

// Run optimizes p with the default pipeline.
func Run(p ir.Program) ir.Program {
	return DefaultPipeline().Run(p)
}
