package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/verify"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the model invariant suite",
		Long: `Recompute every invariant the model promises and report the outcome.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed

Examples:
  moonth verify
  moonth verify --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, cmd)
		},
	}

	return cmd
}

func runVerify(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := verify.RunAll()

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for _, check := range result.Checks {
			mark := "ok"
			if !check.Pass {
				mark = "FAIL"
			}
			fmt.Fprintf(formatter.Writer, "%-4s %-24s %s\n", mark, check.Name, check.Detail)
			if !check.Pass || opts.Verbose {
				fmt.Fprintf(formatter.Writer, "     got %v, want %v ± %v\n",
					check.Got, check.Want, check.Tolerance)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d checks: %d passed, %d failed\n",
			result.Total, result.Passed, result.Failed)
	}

	if !result.AllPassed() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d invariant checks failed", result.Failed))
	}
	return nil
}
