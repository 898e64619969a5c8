package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command with the given args and returns its stdout.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "moonth", cmd.Use)
	assert.Contains(t, cmd.Long, "five-phase")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"report", "phases", "transition", "cycle", "scale",
		"coherence", "laws", "resonances", "verify",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	_, err := executeCommand(t, cmd, "cycle", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestReportCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	reportCmd, _, err := cmd.Find([]string{"report"})
	require.NoError(t, err)

	baseFlag := reportCmd.Flags().Lookup("base")
	require.NotNil(t, baseFlag)
	assert.Equal(t, "137", baseFlag.DefValue)

	for flag, def := range map[string]string{
		"phi-min": "-4", "phi-max": "6", "sex-min": "-1", "sex-max": "3",
	} {
		f := reportCmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s should exist", flag)
		assert.Equal(t, def, f.DefValue, "flag %s default", flag)
	}
}

func TestScaleCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	scaleCmd, _, err := cmd.Find([]string{"scale"})
	require.NoError(t, err)

	baseFlag := scaleCmd.Flags().Lookup("base")
	require.NotNil(t, baseFlag)
	assert.Equal(t, "137", baseFlag.DefValue)
}
