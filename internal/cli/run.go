package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/bfc/internal/backend"
	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Optimize bool
	Backend  string
	ShowIR   bool
	MaxSteps int64
	History  string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program in-process",
		Long: `Build a program and run it on an in-process backend.

Program input is read from stdin and program output goes to stdout.
Reading past the end of input exits with status 3, the same status a
compiled C program uses.

Examples:
  bfc run hello.bf
  bfc run -O --type jit mandelbrot.bf
  echo abc | bfc run --history runs.db cat.bf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Optimize, "optimize", "O", false, "run the optimizer before executing")
	cmd.Flags().StringVarP(&opts.Backend, "type", "t", backend.NameInterpreter, "backend: interpreter or jit")
	cmd.Flags().BoolVar(&opts.ShowIR, "ir", false, "print the executed IR to stderr first")
	cmd.Flags().Int64Var(&opts.MaxSteps, "max-steps", 0, "step quota (0 = unlimited)")
	cmd.Flags().StringVar(&opts.History, "history", "", "record the run in this SQLite database")

	return cmd
}

func runProgram(cmd *cobra.Command, opts *RunOptions, path string) error {
	if err := opts.prepare(cmd); err != nil {
		return err
	}

	cfg := opts.Config
	flags := cmd.Flags()
	if flags.Changed("optimize") {
		cfg.Optimize = opts.Optimize
	}
	if flags.Changed("type") {
		cfg.Backend = opts.Backend
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = opts.MaxSteps
	}
	if flags.Changed("history") {
		cfg.History = opts.History
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid settings", err)
	}

	lp, err := loadProgram(path, cfg)
	if err != nil {
		return err
	}
	if opts.ShowIR {
		fmt.Fprint(cmd.ErrOrStderr(), ir.Format(lp.Prog))
	}

	in := newCountingReader(cmd.InOrStdin(), cmd.OutOrStdout())
	out := &countingWriter{w: cmd.OutOrStdout()}
	stats, runErr := backend.Execute(cfg.Backend, lp.Prog, in, out, backend.ExecOptions{
		MaxSteps: cfg.MaxSteps,
		MaxDepth: cfg.MaxNesting,
		Optimize: cfg.Optimize,
	})

	pending, flushErr := flushOutput(cmd.OutOrStdout())
	out.n -= pending
	if flushErr != nil && !engine.IsIOError(runErr) {
		runErr = engine.NewIOError("write", flushErr)
	}

	kind := engine.Kind(runErr)
	slog.Debug("run finished",
		"program", path,
		"backend", cfg.Backend,
		"optimized", cfg.Optimize,
		"steps", stats.Steps,
		"pointer", stats.Pointer,
		"error_kind", kind,
	)

	if cfg.History != "" {
		run := store.Run{
			ProgramHash: ir.Fingerprint(lp.Raw),
			Source:      string(lp.Source),
			Backend:     cfg.Backend,
			Optimized:   cfg.Optimize,
			Atoms:       ir.Count(lp.Prog),
			InputBytes:  in.n,
			OutputBytes: out.n,
			Steps:       stats.Steps,
			ErrorKind:   kind,
		}
		if err := recordRun(contextOf(cmd), cfg.History, run); err != nil {
			return err
		}
	}

	return runExitError(runErr)
}

func recordRun(ctx context.Context, path string, run store.Run) error {
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open history", err)
	}
	defer st.Close()

	rec, err := st.RecordRun(ctx, run)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to record run", err)
	}
	slog.Debug("run recorded", "history", path, "id", rec.ID, "seq", rec.Seq)
	return nil
}

// runExitError maps a backend error onto the CLI exit codes.
func runExitError(err error) error {
	switch {
	case err == nil:
		return nil
	case engine.IsEmptyInput(err):
		return WrapExitError(ExitEmptyInput, "empty input", err)
	default:
		return WrapExitError(ExitFailure, "execution failed", err)
	}
}
