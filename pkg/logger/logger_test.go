//go:build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Infof("test message with args: %s", "value")
	logger.Errorf("failure: %v", assert.AnError)
}

func TestLogger_ConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Console: &buf})
	require.NoError(t, err)

	logger.Logf("hidden debug line")
	logger.Infof("Initializing local repository...")
	logger.Errorf("Repository name is not free.")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug line")
	assert.Contains(t, out, "Initializing local repository...")
	assert.Contains(t, out, "Repository name is not free.")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "ERROR")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Console: &buf, Verbose: true})
	require.NoError(t, err)

	logger.Logf("debug %d", 42)

	assert.Contains(t, buf.String(), "debug 42")
}

func TestLogger_File(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "nested", "git-repo.log")

	logger, err := NewLogger(Options{Console: &buf, LogFile: logFile})
	require.NoError(t, err)

	logger.Logf("only in file")
	logger.Infof("in both")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "only in file")
	assert.Contains(t, string(data), "INFO in both")
	assert.NotContains(t, buf.String(), "only in file")
}
