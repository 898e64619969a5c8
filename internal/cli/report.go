package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/report"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	BaseHours float64
	PhiMin    int
	PhiMax    int
	SexMin    int
	SexMax    int

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens report.TokenGenerator
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}
	defaults := report.DefaultSpec()

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the full model report",
		Long: `Assemble and render one snapshot of the whole model: constants, the
phase cycle, both scaling ladders, the coherence bridge, and the static
reference tables.

Examples:
  moonth report
  moonth report --base 60 --phi-max 10
  moonth report --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.BaseHours, "base", defaults.BaseHours, "base duration in hours")
	cmd.Flags().IntVar(&opts.PhiMin, "phi-min", defaults.PhiMin, "lowest φ-ladder index")
	cmd.Flags().IntVar(&opts.PhiMax, "phi-max", defaults.PhiMax, "highest φ-ladder index")
	cmd.Flags().IntVar(&opts.SexMin, "sex-min", defaults.SexMin, "lowest sexagesimal-ladder index")
	cmd.Flags().IntVar(&opts.SexMax, "sex-max", defaults.SexMax, "highest sexagesimal-ladder index")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	spec := report.Spec{
		BaseHours: opts.BaseHours,
		PhiMin:    opts.PhiMin,
		PhiMax:    opts.PhiMax,
		SexMin:    opts.SexMin,
		SexMax:    opts.SexMax,
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = report.UUIDv7Generator{}
	}

	slog.Debug("building report", "base_hours", spec.BaseHours,
		"phi_range", []int{spec.PhiMin, spec.PhiMax},
		"sex_range", []int{spec.SexMin, spec.SexMax})

	r, err := report.Build(spec, tokens)
	if err != nil {
		if ferr := formatter.Error(CodeBadSpec, err.Error(), spec); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "invalid report spec", err)
	}

	if opts.Format == "json" {
		return formatter.Success(r)
	}
	return report.RenderText(formatter.Writer, r)
}
