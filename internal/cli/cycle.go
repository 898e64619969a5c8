package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/phase"
)

// NewCycleCommand creates the cycle command.
func NewCycleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Compute the duration of one full cycle",
		Long: `Compute the duration of one symbolic Moonth: five phase quanta of 137
hours plus 11 hours of transition buffer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycle(rootOpts, cmd)
		},
	}

	return cmd
}

func runCycle(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := phase.CalculateCycleDuration()
	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s: %.2f h (%.2f days)\n",
		result.Description, result.TotalHours, result.TotalDays)
	return nil
}
