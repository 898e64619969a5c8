package report

import (
	"fmt"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
	"github.com/themoonth/the-moonth-simulation/internal/phase"
	"github.com/themoonth/the-moonth-simulation/internal/reference"
	"github.com/themoonth/the-moonth-simulation/internal/scale"
)

// maxLadderRows caps the span of a scaling ladder. The model tolerates any
// scale index, but a report is meant to be read.
const maxLadderRows = 64

// Spec selects what a report covers: the base duration and the index ranges
// of the two scaling ladders. Ranges are inclusive.
type Spec struct {
	BaseHours float64 `json:"base_hours"`
	PhiMin    int     `json:"phi_min"`
	PhiMax    int     `json:"phi_max"`
	SexMin    int     `json:"sex_min"`
	SexMax    int     `json:"sex_max"`
}

// DefaultSpec covers the ranges the model narrative usually cites: the
// φ ladder from −4 to 6 and the sexagesimal ladder from −1 to 3, both
// anchored at one phase quantum.
func DefaultSpec() Spec {
	return Spec{
		BaseHours: scale.DefaultBaseHours,
		PhiMin:    -4,
		PhiMax:    6,
		SexMin:    -1,
		SexMax:    3,
	}
}

// Validate checks that the spec describes a renderable report.
func (s Spec) Validate() error {
	if s.BaseHours <= 0 {
		return fmt.Errorf("base hours must be positive, got %v", s.BaseHours)
	}
	if s.PhiMin > s.PhiMax {
		return fmt.Errorf("phi range inverted: %d > %d", s.PhiMin, s.PhiMax)
	}
	if s.SexMin > s.SexMax {
		return fmt.Errorf("sexagesimal range inverted: %d > %d", s.SexMin, s.SexMax)
	}
	if rows := s.PhiMax - s.PhiMin + 1; rows > maxLadderRows {
		return fmt.Errorf("phi ladder spans %d rows, max %d", rows, maxLadderRows)
	}
	if rows := s.SexMax - s.SexMin + 1; rows > maxLadderRows {
		return fmt.Errorf("sexagesimal ladder spans %d rows, max %d", rows, maxLadderRows)
	}
	return nil
}

// Constants is the read-only view of the kernel anchors exposed for display.
type Constants struct {
	AlphaInverse float64 `json:"alpha_inverse"`
	Alpha        float64 `json:"alpha"`
	Phi          float64 `json:"phi"`
	PhiSquared   float64 `json:"phi_squared"`
	PhiInverse   float64 `json:"phi_inverse"`
	NPhases      int     `json:"n_phases"`
	PhaseQuantum float64 `json:"phase_quantum_hours"`
	BufferTotal  float64 `json:"buffer_total_hours"`
}

// Report is one assembled snapshot of the whole model. Every field is
// computed from the kernel constants and the spec; nothing is read from the
// environment.
type Report struct {
	RunToken          string                    `json:"run_token"`
	Spec              Spec                      `json:"spec"`
	Constants         Constants                 `json:"constants"`
	Cycle             phase.CycleDurationResult `json:"cycle"`
	Transitions       []phase.Transition        `json:"transitions"`
	PhiLadder         []scale.Result            `json:"phi_ladder"`
	SexagesimalLadder []scale.Result            `json:"sexagesimal_ladder"`
	Coherence         kernel.CoherenceCheck     `json:"coherence"`
	Laws              []reference.Law           `json:"laws"`
	Resonances        []reference.Resonance     `json:"resonances"`
}

// Build assembles a report for the given spec. Deterministic up to the run
// token: two builds with the same spec and a fixed generator are equal.
func Build(spec Spec, gen TokenGenerator) (*Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report spec: %w", err)
	}

	return &Report{
		RunToken: gen.Generate(),
		Spec:     spec,
		Constants: Constants{
			AlphaInverse: kernel.AlphaInverse,
			Alpha:        kernel.Alpha,
			Phi:          kernel.Phi,
			PhiSquared:   kernel.PhiSquared,
			PhiInverse:   kernel.PhiInverse,
			NPhases:      kernel.NPhases,
			PhaseQuantum: phase.PhaseQuantum,
			BufferTotal:  phase.BufferTotal,
		},
		Cycle:             phase.CalculateCycleDuration(),
		Transitions:       phase.Transitions(),
		PhiLadder:         ladder(scale.Phi, spec.PhiMin, spec.PhiMax, spec.BaseHours),
		SexagesimalLadder: ladder(scale.Sexagesimal, spec.SexMin, spec.SexMax, spec.BaseHours),
		Coherence:         kernel.CoherenceCheckSixtyBridge(),
		Laws:              reference.Laws(),
		Resonances:        reference.Resonances(),
	}, nil
}

func ladder(fn func(int, float64) scale.Result, min, max int, baseHours float64) []scale.Result {
	out := make([]scale.Result, 0, max-min+1)
	for n := min; n <= max; n++ {
		out = append(out, fn(n, baseHours))
	}
	return out
}
