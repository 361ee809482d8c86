package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/bfc/internal/ir"
	"github.com/roach88/bfc/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB      string
	Program string
	Backend string
	Failed  bool
	Limit   int
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Runs  []store.Run `json:"runs"`
	Total int64       `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded by "bfc run --history".

--program selects runs of one source file by fingerprint, so raw and
optimized runs of the same program are listed together.

Examples:
  bfc history --db runs.db
  bfc history --db runs.db --program hello.bf --limit 5
  bfc history --db runs.db --failed --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "history database (default: config history)")
	cmd.Flags().StringVar(&opts.Program, "program", "", "only runs of this program file")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "only runs on this backend")
	cmd.Flags().BoolVar(&opts.Failed, "failed", false, "only runs that ended in an error")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "most recent N runs (0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	if err := opts.prepare(cmd); err != nil {
		return err
	}

	db := opts.DB
	if db == "" {
		db = opts.Config.History
	}
	if db == "" {
		return NewExitError(ExitCommandError, "no history database: pass --db or set BFC_HISTORY")
	}

	filter := store.Filter{
		Backend: opts.Backend,
		Failed:  opts.Failed,
		Limit:   opts.Limit,
	}
	if opts.Program != "" {
		lp, err := loadProgram(opts.Program, opts.Config)
		if err != nil {
			return err
		}
		filter.ProgramHash = ir.Fingerprint(lp.Raw)
	}

	st, err := store.Open(db)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open history", err)
	}
	defer st.Close()

	ctx := contextOf(cmd)
	runs, err := st.ListRuns(ctx, filter)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list runs", err)
	}
	total, err := st.CountRuns(ctx, filter)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to count runs", err)
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(HistoryResult{Runs: runs, Total: total})
	}

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tBACKEND\tOPT\tATOMS\tSTEPS\tIN\tOUT\tERROR")
	for _, r := range runs {
		errKind := r.ErrorKind
		if errKind == "" {
			errKind = "-"
		}
		p.Fprintf(tw, "%d\t%s\t%s\t%t\t%d\t%d\t%d\t%d\t%s\n",
			r.Seq, r.ID, r.Backend, r.Optimized, r.Atoms, r.Steps, r.InputBytes, r.OutputBytes, errKind)
	}
	if err := tw.Flush(); err != nil {
		return WrapExitError(ExitFailure, "failed to write history", err)
	}
	p.Fprintf(cmd.OutOrStdout(), "%d of %d runs\n", len(runs), total)
	return nil
}
