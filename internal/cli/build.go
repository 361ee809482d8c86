package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bfc/internal/backend"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Optimize bool
	Output   string
	Compile  bool
	Binary   string
	CC       string
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Translate a program to C",
		Long: `Translate a program to a standalone C source file.

Without -o the C source is written to stdout. With --compile the source
is handed to the configured C compiler (BFC_CC, or cc by default).

Examples:
  bfc build hello.bf
  bfc build -O -o hello.c hello.bf
  bfc build -O -o hello.c --compile --binary hello hello.bf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Optimize, "optimize", "O", false, "run the optimizer before translating")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write C source to this file")
	cmd.Flags().BoolVar(&opts.Compile, "compile", false, "compile the C source (requires -o)")
	cmd.Flags().StringVar(&opts.Binary, "binary", "", "binary path for --compile (default: -o without .c)")
	cmd.Flags().StringVar(&opts.CC, "cc", "", "C compiler for --compile (overrides config)")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions, path string) error {
	if err := opts.prepare(cmd); err != nil {
		return err
	}

	cfg := opts.Config
	if cmd.Flags().Changed("optimize") {
		cfg.Optimize = opts.Optimize
	}
	if opts.CC != "" {
		cfg.CC = opts.CC
	}
	if opts.Compile && opts.Output == "" {
		return NewExitError(ExitCommandError, "--compile requires -o")
	}

	lp, err := loadProgram(path, cfg)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	var f *os.File
	if opts.Output != "" {
		f, err = os.Create(opts.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := backend.Dispatch[string](backend.NewC(w), lp.Prog); err != nil {
		return WrapExitError(ExitFailure, "failed to write C source", err)
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return WrapExitError(ExitFailure, "failed to write C source", err)
		}
	}

	slog.Debug("c source written",
		"program", path,
		"output", opts.Output,
		"optimized", cfg.Optimize,
	)

	if opts.Output == "" {
		return nil
	}

	res := buildResult{Source: opts.Output}
	if opts.Compile {
		res.Binary = opts.Binary
		if res.Binary == "" {
			res.Binary = binaryPath(opts.Output)
		}
		if err := compileC(cmd, cfg.CC, res.Source, res.Binary); err != nil {
			return err
		}
	}
	return opts.formatter(cmd).Success(res)
}

type buildResult struct {
	Source string `json:"source"`
	Binary string `json:"binary,omitempty"`
}

func (r buildResult) String() string {
	if r.Binary == "" {
		return "wrote " + r.Source
	}
	return fmt.Sprintf("wrote %s, compiled %s", r.Source, r.Binary)
}

// binaryPath derives the executable name from a C source path.
func binaryPath(source string) string {
	if bin, ok := strings.CutSuffix(source, ".c"); ok && bin != "" {
		return bin
	}
	return source + ".out"
}

func compileC(cmd *cobra.Command, cc, source, binary string) error {
	var stderr bytes.Buffer
	c := exec.CommandContext(contextOf(cmd), cc, "-O2", "-o", binary, source)
	c.Stdout = cmd.ErrOrStderr()
	c.Stderr = &stderr

	slog.Debug("compiling", "cc", cc, "source", source, "binary", binary)
	if err := c.Run(); err != nil {
		if stderr.Len() > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), stderr.String())
		}
		return WrapExitError(ExitFailure, fmt.Sprintf("%s failed", cc), err)
	}
	return nil
}
