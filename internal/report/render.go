package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/themoonth/the-moonth-simulation/internal/scale"
)

// english groups digits the way the report tables expect (8,220.00).
var english = message.NewPrinter(language.English)

// RenderText writes the fixed-layout text form of the report. The layout is
// deterministic: the same report renders to the same bytes.
func RenderText(w io.Writer, r *Report) error {
	var err error
	write := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	write("THE MOONTH — SYMBOLIC CYCLE REPORT\n")
	write("run: %s\n", r.RunToken)

	write("\nCONSTANTS\n")
	write("  1/α (fine-structure inverse)  %.6f\n", r.Constants.AlphaInverse)
	write("  α                             %.6f\n", r.Constants.Alpha)
	write("  φ (golden ratio)              %.6f\n", r.Constants.Phi)
	write("  φ²                            %.6f\n", r.Constants.PhiSquared)
	write("  1/φ                           %.6f\n", r.Constants.PhiInverse)
	write("  phases per cycle              %d\n", r.Constants.NPhases)
	write("  phase quantum                 %.1f h\n", r.Constants.PhaseQuantum)
	write("  buffer total                  %.1f h\n", r.Constants.BufferTotal)

	write("\nCYCLE\n")
	write("  total %.2f h (%.2f days) — %s\n",
		r.Cycle.TotalHours, r.Cycle.TotalDays, r.Cycle.Description)

	write("\nTRANSITIONS\n")
	for _, tr := range r.Transitions {
		write("  %-12s → %-12s %5.1f h\n", tr.From, tr.To, tr.Impedance)
	}

	write("\nφ-SCALING (base %.1f h)\n", r.Spec.BaseHours)
	writeLadder(write, r.PhiLadder)

	write("\nSEXAGESIMAL SCALING (base %.1f h)\n", r.Spec.BaseHours)
	writeLadder(write, r.SexagesimalLadder)

	write("\nCOHERENCE BRIDGE\n")
	write("  %s = %.4f vs %.0f (relative error %.2f%%)\n",
		r.Coherence.Expression, r.Coherence.Result, r.Coherence.Reference,
		r.Coherence.RelativeError*100)

	write("\nLEGES UNDECIM\n")
	for i, law := range r.Laws {
		write("  %2d. %-14s %s\n", i+1, law.Name, law.Description)
	}

	write("\nRESONANCE CANDIDATES\n")
	for _, res := range r.Resonances {
		write("  %-21s observed %v %s, calculated %v (proximity %.2f, %s)\n",
			res.Name, res.Observed, res.Unit, res.Calculated, res.Proximity, res.Domain)
	}

	return err
}

// writeLadder renders one scaling table. Alignment comes from plain fmt;
// digit grouping inside each cell comes from the English printer.
func writeLadder(write func(string, ...interface{}), rows []scale.Result) {
	write("  %5s  %22s  %20s  %16s\n", "n", "hours", "days", "years")
	for _, row := range rows {
		write("  %5d  %22s  %20s  %16s\n",
			row.N,
			english.Sprintf("%.2f", row.Hours),
			english.Sprintf("%.2f", row.Days),
			english.Sprintf("%.4f", row.Years),
		)
	}
}
