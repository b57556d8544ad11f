package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
		{level: "bogus", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			err := InitWithOptions(Options{
				Level:      tt.level,
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			})
			require.NoError(t, err)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			logContent := string(content)

			for _, exp := range tt.expected {
				assert.Contains(t, logContent, exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, logContent, exc)
			}
		})
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	require.NoError(t, InitWithOptions(Options{Level: "info", Path: logFile, MaxSizeMB: 1}))

	Info("where am i")
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "logger_test.go"),
		"expected caller to be the test file, got %q", string(content))
}

func TestSugarCallerPointsAtCallSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "sugar.log")
	require.NoError(t, InitWithOptions(Options{Level: "info", Path: logFile, MaxSizeMB: 1}))

	Sugar.Infof("sugared %d", 42)
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "sugared 42")
	assert.Contains(t, string(content), "logger_test.go",
		"expected caller to be the test file, got %q", string(content))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("warn", "/tmp/varkon.log")

	assert.Equal(t, "warn", opts.Level)
	assert.True(t, opts.Console)
	assert.Equal(t, "/tmp/varkon.log", opts.Path)
	assert.Equal(t, 20, opts.MaxSizeMB)
	assert.Equal(t, 3, opts.MaxBackups)
	assert.Equal(t, 7, opts.MaxAgeDays)
	assert.True(t, opts.Compress)
}

func TestNopBeforeInit(t *testing.T) {
	Log = nil
	Sync()

	require.NoError(t, InitWithOptions(Options{Level: "info"}))
	assert.NotPanics(t, func() { Info("no cores configured") })
}
