package kernel

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoherenceCheckSixtyBridge_Values(t *testing.T) {
	check := CoherenceCheckSixtyBridge()

	assert.Equal(t, "137 × φ² / 6", check.Expression)
	assert.Equal(t, 59.7942, check.Result)
	assert.Equal(t, 60.0, check.Reference)
	assert.Equal(t, 0.0034, check.RelativeError)
}

func TestCoherenceCheckSixtyBridge_ErrorFromUnroundedResult(t *testing.T) {
	check := CoherenceCheckSixtyBridge()

	// The relative error is derived from the full-precision expression, not
	// from the rounded Result field.
	calculated := AlphaInverse * PhiSquared / 6
	want := round4(math.Abs(calculated-60.0) / 60.0)
	assert.Equal(t, want, check.RelativeError)
	assert.Less(t, check.RelativeError, 0.005, "bridge should land within 0.5% of 60")
}

func TestCoherenceCheckSixtyBridge_Deterministic(t *testing.T) {
	first := CoherenceCheckSixtyBridge()
	second := CoherenceCheckSixtyBridge()
	assert.Equal(t, first, second)
}

func TestCoherenceCheck_JSONShape(t *testing.T) {
	data, err := json.Marshal(CoherenceCheckSixtyBridge())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "expression")
	assert.Contains(t, decoded, "result")
	assert.Contains(t, decoded, "reference")
	assert.Contains(t, decoded, "relative_error")
	assert.InDelta(t, 59.7942, decoded["result"], 1e-9)
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 59.7942, round4(59.79415094705510))
	assert.Equal(t, 0.0034, round4(0.003430817549081648))
	assert.Equal(t, 1.0, round4(1.0))
	assert.Equal(t, -2.5, round4(-2.5))
	// Half rounds away from zero.
	assert.Equal(t, 0.0001, round4(0.00005))
}
