package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)
	assert.True(t, FileExists(filepath.Join(root, "go.mod")))
}

func TestGetProjectRootValidated(t *testing.T) {
	root, err := GetProjectRootValidated()
	require.NoError(t, err)
	assert.True(t, DirExists(filepath.Join(root, "internal")))
}

func TestFileExists(t *testing.T) {
	assert.False(t, FileExists("/non/existent/file"))
	assert.False(t, DirExists("/non/existent/dir"))
}

func TestScriptedClock(t *testing.T) {
	clock := NewScriptedClock(time.Second, 2*time.Second)

	assert.Equal(t, time.Second, clock.Now())
	assert.Equal(t, 2*time.Second, clock.Now())
	// exhausted: last reading repeats
	assert.Equal(t, 2*time.Second, clock.Now())

	clock.Push(5 * time.Second)
	assert.Equal(t, 5*time.Second, clock.Now())
}

func TestScriptedClock_Empty(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewScriptedClock().Now())
}

func TestSeconds(t *testing.T) {
	clock := Seconds(0, 0.25)
	assert.Equal(t, time.Duration(0), clock.Now())
	assert.Equal(t, 250*time.Millisecond, clock.Now())
}

func TestLineRecorder(t *testing.T) {
	var rec LineRecorder
	assert.Empty(t, rec.Last())

	rec.Sink("first")
	rec.Sink("second")

	assert.Equal(t, []string{"first", "second"}, rec.Lines())
	assert.Equal(t, "second", rec.Last())
}
