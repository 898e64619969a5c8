package phase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themoonth/the-moonth-simulation/internal/kernel"
)

func TestCalculateCycleDuration_Totals(t *testing.T) {
	result := CalculateCycleDuration()

	assert.Equal(t, 696.0, result.TotalHours)
	assert.Equal(t, 29.0, result.TotalDays)
	assert.Equal(t, "One symbolic Moonth cycle", result.Description)
}

func TestCalculateCycleDuration_ComposedFromParts(t *testing.T) {
	result := CalculateCycleDuration()

	var buffer float64
	for _, tr := range Transitions() {
		buffer += tr.Impedance
	}
	want := float64(kernel.NPhases)*PhaseQuantum + buffer
	assert.Equal(t, want, result.TotalHours, "total must equal five quanta plus the transition buffer")
	assert.Equal(t, result.TotalHours/kernel.HoursPerDay, result.TotalDays, "696h divides into whole days")
}

func TestCalculateCycleDuration_Deterministic(t *testing.T) {
	assert.Equal(t, CalculateCycleDuration(), CalculateCycleDuration())
}

func TestCycleDurationResult_JSONShape(t *testing.T) {
	data, err := json.Marshal(CalculateCycleDuration())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.InDelta(t, 696.0, decoded["total_hours"], 1e-9)
	assert.InDelta(t, 29.0, decoded["total_days"], 1e-9)
	assert.Equal(t, "One symbolic Moonth cycle", decoded["description"])
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 29.0, round2(29.0))
	assert.Equal(t, 28.54, round2(28.5416666))
	assert.Equal(t, -1.25, round2(-1.254))
}
