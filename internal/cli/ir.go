package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/bfc/internal/ir"
)

// IROptions holds flags for the ir command.
type IROptions struct {
	*RootOptions
	Optimize bool
}

// IRSummary describes a built program.
type IRSummary struct {
	Listing     string `json:"listing"`
	Atoms       int    `json:"atoms"`
	Depth       int    `json:"depth"`
	Fingerprint string `json:"fingerprint"`
	Optimized   bool   `json:"optimized"`
	IRVersion   string `json:"ir_version"`
}

// NewIRCommand creates the ir command.
func NewIRCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IROptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ir <file>",
		Short: "Print the IR listing of a program",
		Long: `Build a program and print its IR, one atom per line.

The listing is followed by the atom count, the loop depth, and the
fingerprint of the printed program.

Examples:
  bfc ir hello.bf
  bfc ir -O --format json hello.bf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIR(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Optimize, "optimize", "O", false, "print the optimized IR")

	return cmd
}

func runIR(cmd *cobra.Command, opts *IROptions, path string) error {
	if err := opts.prepare(cmd); err != nil {
		return err
	}

	cfg := opts.Config
	if cmd.Flags().Changed("optimize") {
		cfg.Optimize = opts.Optimize
	}

	lp, err := loadProgram(path, cfg)
	if err != nil {
		return err
	}

	summary := IRSummary{
		Listing:     ir.Format(lp.Prog),
		Atoms:       ir.Count(lp.Prog),
		Depth:       ir.Depth(lp.Prog),
		Fingerprint: ir.Fingerprint(lp.Prog),
		Optimized:   cfg.Optimize,
		IRVersion:   ir.IRVersion,
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(summary)
	}

	w := cmd.OutOrStdout()
	fmt.Fprint(w, summary.Listing)
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "; %d atoms, depth %d\n", summary.Atoms, summary.Depth)
	fmt.Fprintf(w, "; fingerprint %s\n", summary.Fingerprint)
	return nil
}
