package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
)

// NewCoherenceCommand creates the coherence command.
func NewCoherenceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coherence",
		Short: "Evaluate the sixty bridge between the scaling systems",
		Long: `Evaluate the coherence bridge 137.036 × φ² / 6 against the sexagesimal
anchor 60 and report the relative error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoherence(rootOpts, cmd)
		},
	}

	return cmd
}

func runCoherence(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	check := kernel.CoherenceCheckSixtyBridge()
	if opts.Format == "json" {
		return formatter.Success(check)
	}

	fmt.Fprintf(formatter.Writer, "%s = %.4f vs %.0f (relative error %.2f%%)\n",
		check.Expression, check.Result, check.Reference, check.RelativeError*100)
	return nil
}
