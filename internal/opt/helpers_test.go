package opt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

// assertProgram compares programs through their listings so failures
// print a readable diff.
func assertProgram(t *testing.T, want, got ir.Program) {
	t.Helper()
	assert.Equal(t, ir.Format(want), ir.Format(got))
}

// outcome is everything observable about one run.
type outcome struct {
	Output  string
	Kind    string
	Pointer int
	Cells   []uint8
}

const cellWindow = 32

func execute(p ir.Program, input []byte, maxSteps int64) outcome {
	var out bytes.Buffer
	e := engine.New(bytes.NewReader(input), &out, engine.WithMaxSteps(maxSteps))
	err := e.Run(p)

	cells := make([]uint8, 0, 2*cellWindow+1)
	for i := -cellWindow; i <= cellWindow; i++ {
		cells = append(cells, e.Cell(ir.WrapAdd(0, i)))
	}
	return outcome{
		Output:  out.String(),
		Kind:    engine.Kind(err),
		Pointer: e.Pointer(),
		Cells:   cells,
	}
}
