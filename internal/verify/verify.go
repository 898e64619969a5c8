package verify

import (
	"math"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
	"github.com/themoonth/the-moonth-simulation/internal/phase"
	"github.com/themoonth/the-moonth-simulation/internal/scale"
)

// Check is one verified invariant: what was recomputed, what the model
// promises, and whether they agree within tolerance.
type Check struct {
	Name      string  `json:"name"`
	Detail    string  `json:"detail"`
	Got       float64 `json:"got"`
	Want      float64 `json:"want"`
	Tolerance float64 `json:"tolerance"`
	Pass      bool    `json:"pass"`
}

// Result aggregates a full run of the invariant suite.
type Result struct {
	Total  int     `json:"total"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
	Checks []Check `json:"checks"`
}

// AllPassed reports whether every check in the run passed.
func (r Result) AllPassed() bool {
	return r.Failed == 0
}

func (r *Result) add(name, detail string, got, want, tolerance float64) {
	pass := math.Abs(got-want) <= tolerance
	r.Checks = append(r.Checks, Check{
		Name:      name,
		Detail:    detail,
		Got:       got,
		Want:      want,
		Tolerance: tolerance,
		Pass:      pass,
	})
	r.Total++
	if pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// RunAll recomputes every model invariant and reports the outcome. The
// result is deterministic; running the suite twice yields identical records.
func RunAll() Result {
	var r Result

	cycle := phase.CalculateCycleDuration()
	r.add("cycle_total_hours", "5 × 137h quanta + 11h buffer", cycle.TotalHours, 696.0, 0)
	r.add("cycle_total_days", "696h expressed in days", cycle.TotalDays, 29.0, 0)

	var impedanceSum float64
	for _, tr := range phase.Transitions() {
		impedanceSum += tr.Impedance
	}
	r.add("impedance_sum", "transition impedances redistribute the buffer", impedanceSum, phase.BufferTotal, 0)

	closed := 0
	for _, p := range phase.Sequence() {
		q := p
		for i := 0; i < kernel.NPhases; i++ {
			q = q.Next()
		}
		if q == p {
			closed++
		}
	}
	r.add("full_cycle_closure", "five successor steps return every phase to itself",
		float64(closed), float64(kernel.NPhases), 0)

	r.add("phi_identity_n0", "φ-scaling is the identity at n = 0",
		scale.Phi(0, scale.DefaultBaseHours).Hours, 137.0, 0)
	r.add("sexagesimal_identity_n0", "60-scaling is the identity at n = 0",
		scale.Sexagesimal(0, scale.DefaultBaseHours).Hours, 137.0, 0)
	r.add("phi_first_step", "137h × φ", scale.Phi(1, scale.DefaultBaseHours).Hours, 221.67, 1e-2)
	r.add("sexagesimal_first_step", "137h × 60", scale.Sexagesimal(1, scale.DefaultBaseHours).Hours, 8220.0, 0)

	r.add("coherence_bridge", "137 × φ² / 6 lands within 0.5% of 60",
		kernel.CoherenceCheckSixtyBridge().RelativeError, 0, 0.005)

	r.add("alpha_consistency", "α × 1/α = 1", kernel.Alpha*kernel.AlphaInverse, 1.0, 1e-12)
	r.add("phi_square_identity", "φ² = φ + 1", kernel.PhiSquared, kernel.Phi+1, 1e-12)
	r.add("phi_inverse_identity", "1/φ = φ − 1", kernel.PhiInverse, kernel.Phi-1, 1e-12)

	return r
}
