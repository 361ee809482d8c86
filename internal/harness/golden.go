package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/opt"
)

// RunWithGolden executes a scenario and compares its optimized IR listing
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot be built or executed.
// Test failure (via goldie) occurs if the listing doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	p, err := scenario.Program()
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, opt.Run(p))

	return result, nil
}

// AssertGolden compares the listing of p against a golden file.
func AssertGolden(t *testing.T, name string, p ir.Program) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(ir.Format(p)))
}
