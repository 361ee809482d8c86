package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/testutil"
)

func TestDefaultPipeline_Order(t *testing.T) {
	var names []string
	for _, pass := range DefaultPipeline() {
		names = append(names, pass.Name)
	}
	assert.Equal(t, []string{
		"combine", "clean", "zero_loops", "offset_op", "reorder", "combine", "clean",
	}, names)
}

func TestRun_Examples(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ir.Program
	}{
		{
			name: "cat until eof",
			src:  "+[,.]",
			want: ir.Program{
				ir.IncValue{Delta: 1, Offset: 0},
				ir.Loop{Body: ir.Program{ir.Read{Offset: 0}, ir.Print{Offset: 0}}},
			},
		},
		{
			name: "clear then bump",
			src:  ">>++<<[-]",
			want: ir.Program{
				ir.SetValue{Value: 0, Offset: 0},
				ir.IncValue{Delta: 2, Offset: 2},
			},
		},
		{
			name: "multiply",
			src:  "+++[>++<-]",
			want: ir.Program{
				ir.IncValue{Delta: 3, Offset: 0},
				ir.Loop{Body: ir.Program{
					ir.IncValue{Delta: -1, Offset: 0},
					ir.IncValue{Delta: 2, Offset: 1},
				}},
			},
		},
		{
			name: "empty",
			src:  "",
			want: ir.Program{},
		},
		{
			name: "net zero motion",
			src:  "><+-",
			want: ir.Program{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertProgram(t, tt.want, Run(compiler.MustBuild(tt.src)))
		})
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	p := compiler.MustBuild("++>>[-]<<[>+<-]..")
	before := ir.Clone(p)

	out := Run(p)
	require.True(t, ir.Equal(before, p))

	// Mutating the output must not reach back into the input tree.
	for i, a := range out {
		if l, ok := a.(ir.Loop); ok && len(l.Body) > 0 {
			l.Body[0] = ir.Print{}
			out[i] = l
		}
	}
	assert.True(t, ir.Equal(before, p))
}

func TestRun_NeverDeepens(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		p := testutil.RandomProgram(testutil.NewRand(seed), testutil.ProgramOptions{})
		assert.LessOrEqual(t, ir.Depth(Run(p)), ir.Depth(p), "seed %d", seed)
	}
}

const rawStepLimit = 20000

// Running a program and its optimized form must produce the same output
// and the same error kind. On success the pointer and the cells around the
// origin must also agree.
func TestRun_PreservesSemantics(t *testing.T) {
	for _, raw := range []bool{true, false} {
		name := "mixed"
		if raw {
			name = "raw"
		}
		t.Run(name, func(t *testing.T) {
			checked := 0
			for seed := uint64(0); seed < 500; seed++ {
				rng := testutil.NewRand(seed)
				p := testutil.RandomProgram(rng, testutil.ProgramOptions{Raw: raw})
				input := testutil.RandomInput(rng, 6)

				want := execute(p, input, rawStepLimit)
				if want.Kind == engine.KindStepsExceeded {
					continue
				}
				checked++

				optimized := Run(p)
				got := execute(optimized, input, 4*rawStepLimit)

				assert.Equal(t, want.Output, got.Output, "seed %d output\n%s", seed, ir.Format(p))
				assert.Equal(t, want.Kind, got.Kind, "seed %d error kind\n%s", seed, ir.Format(p))
				if want.Kind == "" {
					assert.Equal(t, want.Pointer, got.Pointer, "seed %d pointer", seed)
					assert.Equal(t, want.Cells, got.Cells, "seed %d cells", seed)
				}
			}
			assert.Greater(t, checked, 100, "too few terminating programs")
		})
	}
}

func TestPipeline_SinglePass(t *testing.T) {
	pl := Pipeline{{Name: "zero_loops", Fn: ZeroLoops}}
	assertProgram(t, ir.Program{ir.SetValue{}}, pl.Run(compiler.MustBuild("[-]")))
}
