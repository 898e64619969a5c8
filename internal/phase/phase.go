package phase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
)

// Phase identifies one of the five stations of the Moonth cycle. The integer
// value is the phase's rank in the cycle order, starting at 1.
type Phase int

const (
	Opening Phase = iota + 1
	Rise
	Expansion
	Descent
	Integration
)

// PhaseQuantum is the symbolic duration of a single phase, in hours. Its
// value is the integer part of the kernel anchor 1/α.
const PhaseQuantum = 137.0

var phaseNames = [kernel.NPhases]string{
	"Opening", "Rise", "Expansion", "Descent", "Integration",
}

// String returns the canonical phase name.
func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p-1]
}

// Rank returns the 1-based position of the phase in the cycle order.
func (p Phase) Rank() int {
	return int(p)
}

// Valid reports whether p is one of the five named phases.
func (p Phase) Valid() bool {
	return p >= Opening && p <= Integration
}

// Next returns the cyclic successor. Integration wraps around to Opening;
// every phase has exactly one successor.
func (p Phase) Next() Phase {
	return Phase(int(p)%kernel.NPhases + 1)
}

// Sequence returns the five phases in cycle order. The returned slice is a
// fresh copy on every call.
func Sequence() []Phase {
	return []Phase{Opening, Rise, Expansion, Descent, Integration}
}

// ParsePhase resolves a phase from its name, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if strings.EqualFold(s, name) {
			return Phase(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q (valid: %s)", s, strings.Join(phaseNames[:], ", "))
}

// MarshalJSON encodes the phase as its canonical name.
func (p Phase) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid phase value %d", int(p))
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a phase from its name, case-insensitively.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePhase(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
