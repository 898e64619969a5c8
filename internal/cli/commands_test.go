package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ====== cycle ======

func TestCycleCommand_Text(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "cycle")
	require.NoError(t, err)
	assert.Contains(t, out, "One symbolic Moonth cycle: 696.00 h (29.00 days)")
}

func TestCycleCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "cycle", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 696.0, data["total_hours"])
	assert.Equal(t, 29.0, data["total_days"])
}

// ====== phases ======

func TestPhasesCommand_ListsAllFiveInOrder(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "phases")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Opening")
	assert.Contains(t, out, "5. Integration")
	assert.Contains(t, out, "→ Opening") // wraparound successor
}

func TestPhasesCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "phases", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	rows, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 5)

	last, ok := rows[4].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Integration", last["name"])
	assert.Equal(t, "Opening", last["next"])
	assert.Equal(t, 137.0, last["quantum_hours"])
}

// ====== coherence ======

func TestCoherenceCommand_Text(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "coherence")
	require.NoError(t, err)
	assert.Contains(t, out, "59.7942")
	assert.Contains(t, out, "0.34%")
}

func TestCoherenceCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "coherence", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 59.7942, data["result"])
	assert.Equal(t, 0.0034, data["relative_error"])
}

// ====== laws ======

func TestLawsCommand_ListsElevenLaws(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "laws")
	require.NoError(t, err)

	assert.Contains(t, out, " 1. Cyclicity")
	assert.Contains(t, out, "11. Interpretation")
}

// ====== resonances ======

func TestResonancesCommand_ListsCandidates(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "resonances")
	require.NoError(t, err)

	assert.Contains(t, out, "BRAC")
	assert.Contains(t, out, "Generational Cycle")
	assert.Contains(t, out, "observed 90 minutes")
}

func TestResonancesCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "resonances", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	rows, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 4)
}

// ====== verify ======

func TestVerifyCommand_AllChecksPass(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "verify")
	require.NoError(t, err)

	assert.Contains(t, out, "0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestVerifyCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "verify", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, data["total"], data["passed"])
	assert.Equal(t, float64(0), data["failed"])
}
