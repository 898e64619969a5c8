package phase

import (
	"math"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
)

// CycleDurationResult is the composed duration of one full cycle: five phase
// quanta plus the total transition buffer.
type CycleDurationResult struct {
	TotalHours  float64 `json:"total_hours"`
	TotalDays   float64 `json:"total_days"`
	Description string  `json:"description"`
}

// CalculateCycleDuration composes one symbolic Moonth from NPhases quanta of
// PhaseQuantum hours plus BufferTotal hours of transitions: 696 hours, or 29
// days. Rounding applies to the reported days only; the hour total is exact.
func CalculateCycleDuration() CycleDurationResult {
	totalHours := float64(kernel.NPhases)*PhaseQuantum + BufferTotal
	return CycleDurationResult{
		TotalHours:  totalHours,
		TotalDays:   round2(totalHours / kernel.HoursPerDay),
		Description: "One symbolic Moonth cycle",
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
