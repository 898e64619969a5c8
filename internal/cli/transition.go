package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themoonth/the-moonth-simulation/internal/phase"
)

// TransitionResult is the payload of a successful impedance lookup.
type TransitionResult struct {
	From           phase.Phase `json:"from"`
	To             phase.Phase `json:"to"`
	ImpedanceHours float64     `json:"impedance_hours"`
}

// NewTransitionCommand creates the transition command.
func NewTransitionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition <from> <to>",
		Short: "Look up the impedance of a phase boundary",
		Long: `Look up the buffer hours consumed crossing from one phase to the next.
Only consecutive cyclic pairs are defined; the cycle is irreversible.

Exit codes:
  0 - Valid transition
  1 - Pair is not a consecutive cyclic step
  2 - Unknown phase name

Examples:
  moonth transition Opening Rise
  moonth transition integration opening --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runTransition(opts *RootOptions, fromArg, toArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	from, err := phase.ParsePhase(fromArg)
	if err != nil {
		if ferr := formatter.Error(CodeUnknownPhase, err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "unknown phase", err)
	}
	to, err := phase.ParsePhase(toArg)
	if err != nil {
		if ferr := formatter.Error(CodeUnknownPhase, err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "unknown phase", err)
	}

	hours, err := phase.Impedance(from, to)
	if err != nil {
		if ferr := formatter.Error(CodeInvalidTransition, err.Error(),
			map[string]string{"from": from.String(), "to": to.String()}); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, "invalid transition", err)
	}

	result := TransitionResult{From: from, To: to, ImpedanceHours: hours}
	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s → %s: %.1f h\n", from, to, hours)
	return nil
}
