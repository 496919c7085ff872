package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "perfmon", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommandHelp(t *testing.T) {
	out, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "times named regions")
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "Usage:")
}

func TestRootCommandVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	out, _, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "perfmon version 1.2.3")
	assert.Contains(t, out, "Commit: abc123")
}

func TestRootCommandSubcommands(t *testing.T) {
	commandNames := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		commandNames = append(commandNames, sub.Name())
	}

	for _, expected := range []string{"run", "config"} {
		assert.Contains(t, commandNames, expected, "Expected subcommand '%s' not found", expected)
	}
}

func TestRootCommandInvalidFlag(t *testing.T) {
	_, errOut, err := executeCommand(t, "--invalid-flag")
	require.Error(t, err)
	assert.Contains(t, errOut, "unknown flag")
}

func TestRootCommandBadConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, "--config", "/does/not/exist.yaml", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading configuration")
}
