package phase

import "github.com/themoonth/the-moonth-simulation/internal/kernel"

// BufferTotal is the transition overhead of one full cycle, in hours: the
// sum of the five boundary impedances.
const BufferTotal = 11.0

// Transition is one directed edge of the phase cycle together with its
// impedance, the buffer hours consumed crossing that boundary.
type Transition struct {
	From      Phase   `json:"from"`
	To        Phase   `json:"to"`
	Impedance float64 `json:"impedance_hours"`
}

// transitions lists the five boundary crossings in cycle order. Impedances
// are deliberately asymmetric and sum to BufferTotal.
var transitions = [kernel.NPhases]Transition{
	{From: Opening, To: Rise, Impedance: 2.0},
	{From: Rise, To: Expansion, Impedance: 3.0},
	{From: Expansion, To: Descent, Impedance: 1.0},
	{From: Descent, To: Integration, Impedance: 4.0},
	{From: Integration, To: Opening, Impedance: 1.0},
}

// Transitions returns the five boundary crossings in cycle order, starting
// at Opening → Rise. The returned slice is a copy.
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	copy(out, transitions[:])
	return out
}

// Impedance returns the buffer hours consumed moving from one phase to the
// next. Only consecutive cyclic pairs are defined: any other pair, including
// backward steps and self-transitions, returns an InvalidTransitionError.
func Impedance(from, to Phase) (float64, error) {
	for _, tr := range transitions {
		if tr.From == from && tr.To == to {
			return tr.Impedance, nil
		}
	}
	return 0, &InvalidTransitionError{From: from, To: to}
}
