package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/phase"
)

// PhaseRow is one line of the phases listing.
type PhaseRow struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	QuantumHours float64 `json:"quantum_hours"`
	Next         string  `json:"next"`
}

// NewPhasesCommand creates the phases command.
func NewPhasesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the five phases in cycle order",
		Long: `List the five phases of the Moonth cycle in rank order, each with its
quantum and cyclic successor.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhases(rootOpts, cmd)
		},
	}

	return cmd
}

func runPhases(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rows := make([]PhaseRow, 0, len(phase.Sequence()))
	for _, p := range phase.Sequence() {
		rows = append(rows, PhaseRow{
			Rank:         p.Rank(),
			Name:         p.String(),
			QuantumHours: phase.PhaseQuantum,
			Next:         p.Next().String(),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(rows)
	}

	for _, row := range rows {
		fmt.Fprintf(formatter.Writer, "%d. %-12s %.1f h → %s\n",
			row.Rank, row.Name, row.QuantumHours, row.Next)
	}
	return nil
}
