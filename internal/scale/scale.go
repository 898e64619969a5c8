package scale

import (
	"math"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
)

// DefaultBaseHours is the base duration most callers scale from: one phase
// quantum of 137 hours.
const DefaultBaseHours = 137.0

// Result is one rung of a scaling ladder: the step index and the scaled
// duration expressed in hours, days, and years. Days and years derive from
// the unrounded hour value.
type Result struct {
	N     int     `json:"n"`
	Hours float64 `json:"hours"`
	Days  float64 `json:"days"`
	Years float64 `json:"years"`
}

// Phi scales baseHours by φ^n. Negative n divides, n = 0 returns the base
// unchanged.
func Phi(n int, baseHours float64) Result {
	return rung(n, baseHours*math.Pow(kernel.Phi, float64(n)))
}

// Sexagesimal scales baseHours by 60^n, one base-60 order of magnitude per
// step.
func Sexagesimal(n int, baseHours float64) Result {
	return rung(n, baseHours*math.Pow(60, float64(n)))
}

func rung(n int, hours float64) Result {
	return Result{
		N:     n,
		Hours: hours,
		Days:  hours / kernel.HoursPerDay,
		Years: hours / (kernel.HoursPerDay * kernel.DaysPerYear),
	}
}
