package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.yaml")

	out, _, err := executeCommand(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespace: perfmon")
}

func TestConfigShow(t *testing.T) {
	out, _, err := executeCommand(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "log_level: info")
	assert.Contains(t, out, "type: stdout")
	assert.Contains(t, out, "format: table")
}

func TestConfigShowFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sink:\n  type: slog\n"), 0o600))

	out, _, err := executeCommand(t, "--config", path, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# loaded from "+path)
	assert.Contains(t, out, "type: slog")
}
