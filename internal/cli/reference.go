package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/reference"
)

// NewLawsCommand creates the laws command.
func NewLawsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laws",
		Short: "List the eleven operational laws",
		Long: `List the eleven operational laws (Leges Undecim) governing the model,
in canonical order. The laws are static reference data; nothing computes
them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaws(rootOpts, cmd)
		},
	}

	return cmd
}

func runLaws(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	laws := reference.Laws()
	if opts.Format == "json" {
		return formatter.Success(laws)
	}

	for i, law := range laws {
		fmt.Fprintf(formatter.Writer, "%2d. %-14s %s\n", i+1, law.Name, law.Description)
	}
	return nil
}

// NewResonancesCommand creates the resonances command.
func NewResonancesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resonances",
		Short: "List the structural resonance candidates",
		Long: `List the observed rhythms neighboring the model's calculated durations.
The entries are flagged correspondences, not causal claims, and are static
reference data.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResonances(rootOpts, cmd)
		},
	}

	return cmd
}

func runResonances(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	resonances := reference.Resonances()
	if opts.Format == "json" {
		return formatter.Success(resonances)
	}

	for _, r := range resonances {
		fmt.Fprintf(formatter.Writer, "%-21s observed %v %s, calculated %v (proximity %.2f, %s)\n",
			r.Name, r.Observed, r.Unit, r.Calculated, r.Proximity, r.Domain)
	}
	return nil
}
