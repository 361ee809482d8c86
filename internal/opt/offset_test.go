package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/testutil"
)

func TestOffsetOp_FoldsPointerMotion(t *testing.T) {
	got := OffsetOp(compiler.MustBuild(">+>-<.[>]"))
	want := ir.Program{
		ir.IncValue{Delta: 1, Offset: 1},
		ir.IncValue{Delta: -1, Offset: 2},
		ir.Print{Offset: 1},
		ir.MovePtr{Offset: 1},
		ir.Loop{Body: ir.Program{ir.MovePtr{Offset: 1}}},
		ir.MovePtr{Offset: 0},
	}
	assertProgram(t, want, got)
}

func TestOffsetOp_AddsToExistingOffsets(t *testing.T) {
	in := ir.Program{
		ir.MovePtr{Offset: 2},
		ir.SetValue{Value: 4, Offset: -1},
		ir.Read{Offset: 3},
	}
	want := ir.Program{
		ir.SetValue{Value: 4, Offset: 1},
		ir.Read{Offset: 5},
		ir.MovePtr{Offset: 2},
	}
	assertProgram(t, want, OffsetOp(in))
}

func TestOffsetOp_AlwaysFlushes(t *testing.T) {
	assertProgram(t, ir.Program{ir.MovePtr{}}, OffsetOp(nil))
	assertProgram(t,
		ir.Program{ir.MovePtr{}, ir.Loop{Body: ir.Program{ir.MovePtr{}}}, ir.MovePtr{}},
		OffsetOp(ir.Program{ir.Loop{}}),
	)
}

// After offset_op every Loop is immediately preceded by a MovePtr at its
// nesting level.
func TestOffsetOp_FlushBeforeEveryLoop(t *testing.T) {
	var check func(p ir.Program, seed uint64)
	check = func(p ir.Program, seed uint64) {
		for i, a := range p {
			l, ok := a.(ir.Loop)
			if !ok {
				continue
			}
			if assert.Greater(t, i, 0, "seed %d: loop at start of run", seed) {
				_, isMove := p[i-1].(ir.MovePtr)
				assert.True(t, isMove, "seed %d: loop preceded by %v", seed, p[i-1])
			}
			check(l.Body, seed)
		}
		if assert.NotEmpty(t, p) {
			_, isMove := p[len(p)-1].(ir.MovePtr)
			assert.True(t, isMove, "seed %d: run must end with a flush", seed)
		}
	}
	for seed := uint64(0); seed < 300; seed++ {
		p := testutil.RandomProgram(testutil.NewRand(seed), testutil.ProgramOptions{})
		check(OffsetOp(p), seed)
	}
}

// Outside the final flush, MovePtr only appears directly before a Loop.
func TestOffsetOp_NoInterleavedMoves(t *testing.T) {
	var check func(p ir.Program)
	check = func(p ir.Program) {
		for i, a := range p {
			switch v := a.(type) {
			case ir.Loop:
				check(v.Body)
			case ir.MovePtr:
				if i == len(p)-1 {
					continue
				}
				_, nextIsLoop := p[i+1].(ir.Loop)
				assert.True(t, nextIsLoop, "MovePtr at %d not followed by a loop", i)
			}
		}
	}
	check(OffsetOp(compiler.MustBuild(">>+<-[>+<-]>>.<<,[[>]<]")))
}
