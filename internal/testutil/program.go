package testutil

import (
	"math/rand/v2"

	"github.com/roach88/bfc/internal/ir"
)

// ProgramOptions shapes RandomProgram output.
type ProgramOptions struct {
	MaxLen    int  // atoms per sequence (default 12)
	MaxDepth  int  // loop nesting (default 3)
	MaxOffset int  // |offset| bound for offset-bearing atoms (default 3)
	Raw       bool // only builder-shaped atoms: offsets 0, unit MovePtr/IncValue, no SetValue
}

func (o ProgramOptions) withDefaults() ProgramOptions {
	if o.MaxLen <= 0 {
		o.MaxLen = 12
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = 3
	}
	if o.MaxOffset <= 0 {
		o.MaxOffset = 3
	}
	return o
}

// RandomProgram generates a random program tree from rng.
//
// The same seed always yields the same program. Generated programs may not
// terminate; run them under an engine step quota.
func RandomProgram(rng *rand.Rand, opts ProgramOptions) ir.Program {
	opts = opts.withDefaults()
	return randomSeq(rng, opts, 0)
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomSeq(rng *rand.Rand, opts ProgramOptions, depth int) ir.Program {
	n := rng.IntN(opts.MaxLen + 1)
	p := make(ir.Program, 0, n)
	for i := 0; i < n; i++ {
		p = append(p, randomAtom(rng, opts, depth))
	}
	return p
}

func randomAtom(rng *rand.Rand, opts ProgramOptions, depth int) ir.Atom {
	if opts.Raw {
		return randomRawAtom(rng, opts, depth)
	}

	off := rng.IntN(2*opts.MaxOffset+1) - opts.MaxOffset
	switch k := rng.IntN(20); {
	case k < 4:
		return ir.MovePtr{Offset: off}
	case k < 9:
		return ir.IncValue{Delta: int8(rng.IntN(7) - 3), Offset: off}
	case k < 12:
		return ir.SetValue{Value: uint8(rng.IntN(4)), Offset: off}
	case k < 14:
		return ir.Print{Offset: off}
	case k < 16:
		return ir.Read{Offset: off}
	default:
		if depth >= opts.MaxDepth {
			return ir.IncValue{Delta: -1}
		}
		return ir.Loop{Body: randomSeq(rng, opts, depth+1)}
	}
}

func randomRawAtom(rng *rand.Rand, opts ProgramOptions, depth int) ir.Atom {
	switch k := rng.IntN(16); {
	case k < 2:
		return ir.MovePtr{Offset: 1}
	case k < 4:
		return ir.MovePtr{Offset: -1}
	case k < 7:
		return ir.IncValue{Delta: 1}
	case k < 10:
		return ir.IncValue{Delta: -1}
	case k < 11:
		return ir.Print{}
	case k < 12:
		return ir.Read{}
	default:
		if depth >= opts.MaxDepth {
			return ir.IncValue{Delta: -1}
		}
		return ir.Loop{Body: randomSeq(rng, opts, depth+1)}
	}
}

// RandomInput returns up to maxLen random bytes.
func RandomInput(rng *rand.Rand, maxLen int) []byte {
	b := make([]byte, rng.IntN(maxLen+1))
	for i := range b {
		b[i] = byte(rng.IntN(4))
	}
	return b
}
