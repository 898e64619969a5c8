package kernel

import "math"

// SixtyReference is the sexagesimal anchor the coherence bridge is measured
// against.
const SixtyReference = 60.0

// CoherenceCheck reports how close the bridge expression 137.036 × φ² / 6
// lands to the sexagesimal anchor 60.
type CoherenceCheck struct {
	Expression    string  `json:"expression"`
	Result        float64 `json:"result"`
	Reference     float64 `json:"reference"`
	RelativeError float64 `json:"relative_error"`
}

// CoherenceCheckSixtyBridge evaluates 137.036 × φ² / 6 against 60.
//
// The relative error is computed from the full-precision result; rounding to
// four decimal places happens only on the reported fields. Expected values:
// Result 59.7942, RelativeError 0.0034 (about 0.34%).
func CoherenceCheckSixtyBridge() CoherenceCheck {
	calculated := AlphaInverse * PhiSquared / 6
	return CoherenceCheck{
		Expression:    "137 × φ² / 6",
		Result:        round4(calculated),
		Reference:     SixtyReference,
		RelativeError: round4(math.Abs(calculated-SixtyReference) / SixtyReference),
	}
}

// round4 rounds half away from zero to four decimal places.
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
