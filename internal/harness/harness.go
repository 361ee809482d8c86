package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/bfc/internal/backend"
	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/opt"
	"github.com/roach88/bfc/internal/store"
	"github.com/roach88/bfc/internal/testutil"
)

// Harness is the test execution engine.
// It runs one scenario against a fresh store with deterministic run IDs.
type Harness struct {
	store   *store.Store
	logger  *slog.Logger
	outputs map[string]string // run ID -> output bytes
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Build the program; a build error is returned as err
// 2. Optimize a copy with the default pipeline
// 3. Run raw and optimized on every backend, recording each run
// 4. Compare every recorded run with the expectation
func Run(scenario *Scenario) (*Result, error) {
	raw, err := scenario.Program()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", scenario.Name, err)
	}

	st, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewSequentialIDGenerator(scenario.Name)))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:   st,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		outputs: make(map[string]string),
	}

	ctx := context.Background()
	hash := ir.Fingerprint(raw)
	programs := []struct {
		optimized bool
		prog      ir.Program
	}{
		{false, raw},
		{true, opt.Run(raw)},
	}

	for _, name := range scenario.backends() {
		for _, p := range programs {
			if err := h.execute(ctx, scenario, name, hash, p.optimized, p.prog); err != nil {
				return nil, err
			}
		}
	}

	runs, err := st.ListRuns(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}

	result := NewResult()
	for _, r := range runs {
		rr := RunResult{
			ID:         r.ID,
			Backend:    r.Backend,
			Optimized:  r.Optimized,
			Output:     h.outputs[r.ID],
			ErrorKind:  r.ErrorKind,
			Steps:      r.Steps,
			InputBytes: r.InputBytes,
		}
		result.Runs = append(result.Runs, rr)
		check(result, scenario.Expect, rr)
	}

	return result, nil
}

// execute runs one program on one backend and records the run under
// hash, the fingerprint of the unoptimized program.
func (h *Harness) execute(ctx context.Context, s *Scenario, name, hash string, optimized bool, p ir.Program) error {
	var out bytes.Buffer
	in := strings.NewReader(s.Input)
	stats, runErr := backend.Execute(name, p, in, &out, backend.ExecOptions{
		MaxSteps: s.maxSteps(),
		Optimize: optimized,
	})

	kind := engine.Kind(runErr)
	if kind == engine.KindUnknown {
		return fmt.Errorf("%s on %s: %w", s.Name, name, runErr)
	}

	rec, err := h.store.RecordRun(ctx, store.Run{
		ProgramHash: hash,
		Source:      s.Source,
		Backend:     name,
		Optimized:   optimized,
		Atoms:       ir.Count(p),
		InputBytes:  in.Size() - int64(in.Len()), // consumed, not offered
		OutputBytes: int64(out.Len()),
		Steps:       stats.Steps,
		ErrorKind:   kind,
	})
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	h.outputs[rec.ID] = out.String()

	h.logger.Info("scenario run completed",
		"scenario", s.Name,
		"run", rec.ID,
		"backend", name,
		"optimized", optimized,
		"steps", stats.Steps,
		"error_kind", kind,
	)
	return nil
}

func check(result *Result, want Expect, got RunResult) {
	label := got.Backend
	if got.Optimized {
		label += " (optimized)"
	}
	if got.Output != want.Output {
		result.AddError(fmt.Sprintf("%s: output = %q, want %q", label, got.Output, want.Output))
	}
	if got.ErrorKind != want.Error {
		result.AddError(fmt.Sprintf("%s: error = %q, want %q", label, got.ErrorKind, want.Error))
	}
}
