package kernel

import "math"

const (
	// AlphaInverse is the dimensionless anchor of the model, 1/α ≈ 137.036.
	// Its integer part sets the phase quantum in hours.
	AlphaInverse = 137.036

	// Alpha is derived from AlphaInverse, never hardcoded independently.
	Alpha = 1.0 / AlphaInverse

	// NPhases is the number of phases in one Moonth cycle.
	NPhases = 5

	// HoursPerDay and DaysPerYear convert symbolic hours into calendar
	// units when scaling across magnitudes.
	HoursPerDay = 24.0
	DaysPerYear = 365.25
)

// Golden-ratio family. Package variables rather than constants because
// math.Sqrt is not a constant expression; treat them as read-only.
var (
	// Phi is the golden ratio (1 + √5) / 2.
	Phi = (1 + math.Sqrt(5)) / 2

	// PhiSquared is φ², derived from Phi.
	PhiSquared = Phi * Phi

	// PhiInverse is 1/φ, derived from Phi.
	PhiInverse = 1 / Phi
)
