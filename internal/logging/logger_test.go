// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "teampath.log")

	l, err := NewLogger(path, LevelDebug, FormatJSON)
	require.NoError(t, err)
	l.Debug("debug message", "key", "value")
	l.Info("info message", "key", "value")
	l.Warn("warn message", "key", "value")
	l.Error("error message", "key", "value")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second Close is a no-op")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)

	wantLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %d", i)
		require.Equal(t, wantLevels[i], entry["level"])
		require.Equal(t, "value", entry["key"])
	}
}

func TestNewLogger_Stderr(t *testing.T) {
	l, err := NewLogger("", LevelInfo, FormatText)
	require.NoError(t, err)
	require.Nil(t, l.file)
	require.NoError(t, l.Close())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", FormatText)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
}

func TestParseLevel(t *testing.T) {
	require.True(t, ValidLevel("debug"))
	require.True(t, ValidLevel("ERROR"))
	require.False(t, ValidLevel("verbose"))
	require.Equal(t, parseLevel("INFO"), parseLevel("nonsense"), "unknown levels default to INFO")
	require.Len(t, ValidLevels(), 4)
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	root := New(&buf, LevelInfo, FormatJSON)
	child := root.With("worker", 3)
	require.Same(t, root, root.With())

	child.Info("scan")
	require.Contains(t, buf.String(), `"worker":3`)

	buf.Reset()
	child.Slog().Info("via slog")
	require.Contains(t, buf.String(), `"worker":3`)
	require.Contains(t, buf.String(), `"msg":"via slog"`)
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Error("dropped")
	require.NotNil(t, l.Slog())
	require.NoError(t, l.Close())
}
