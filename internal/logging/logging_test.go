package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardWhenNotDebug(t *testing.T) {
	t.Setenv("GITWATCH_DEBUG", "")
	t.Setenv("GITWATCH_DEBUG_FILE", "")

	path, err := Initialize(Options{MaxLogFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("GITWATCH_DEBUG", "")
	t.Setenv("GITWATCH_DEBUG_FILE", "")
	debugFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{DebugFile: debugFile, MaxLogFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close() })

	Logger.Info("hello from test", "key", "value")
	require.NoError(t, Close())

	assert.Equal(t, debugFile, path)
	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "keep.txt"}, names)
}

func TestMultiHandler_FansOut(t *testing.T) {
	var first, second bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h).With("component", "test")

	logger.Info("info message")
	logger.Error("error message")

	assert.Contains(t, first.String(), "info message")
	assert.Contains(t, first.String(), "component=test")
	assert.NotContains(t, second.String(), "info message")
	assert.Contains(t, second.String(), "error message")
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}
