package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/scale"
)

// ScaleOptions holds flags for the scale command.
type ScaleOptions struct {
	*RootOptions
	BaseHours float64
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScaleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scale <system> <n> [n...]",
		Short: "Evaluate a scaling system at the given indices",
		Long: `Evaluate one of the two scaling systems at the given integer indices.

Systems:
  phi          golden-ratio scaling, hours = base × φ^n
  sexagesimal  base-60 scaling, hours = base × 60^n (alias: 60)

Negative indices divide; n = 0 returns the base unchanged.

Examples:
  moonth scale phi 0 1 2 3
  moonth scale 60 -1 0 1 --base 24
  moonth scale sexagesimal 2 --format json`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.BaseHours, "base", scale.DefaultBaseHours, "base duration in hours")

	return cmd
}

func runScale(opts *ScaleOptions, system string, indexArgs []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var fn func(int, float64) scale.Result
	switch system {
	case "phi":
		fn = scale.Phi
	case "sexagesimal", "60":
		fn = scale.Sexagesimal
	default:
		msg := fmt.Sprintf("unknown system %q (valid: phi, sexagesimal)", system)
		if ferr := formatter.Error(CodeUnknownSystem, msg, nil); ferr != nil {
			return ferr
		}
		return NewExitError(ExitCommandError, msg)
	}

	results := make([]scale.Result, 0, len(indexArgs))
	for _, arg := range indexArgs {
		n, err := strconv.Atoi(arg)
		if err != nil {
			msg := fmt.Sprintf("index %q is not an integer", arg)
			if ferr := formatter.Error(CodeBadIndex, msg, nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitCommandError, msg)
		}
		results = append(results, fn(n, opts.BaseHours))
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}

	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "n=%d: %.2f h = %.2f days = %.4f years\n",
			r.N, r.Hours, r.Days, r.Years)
	}
	return nil
}
