package svg

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileSink_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast.svg")
	sink := NewFileSink(path, NewRenderer(), discardLogger())

	require.NoError(t, sink.Publish(context.Background(), testView()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "12 AM")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestFileSink_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast.svg")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	sink := NewFileSink(path, NewRenderer(), discardLogger())
	require.NoError(t, sink.Publish(context.Background(), testView()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestFileSink_Stdout(t *testing.T) {
	var buf bytes.Buffer
	sink := NewFileSink(Stdout, NewRenderer(), discardLogger())
	sink.stdout = &buf

	require.NoError(t, sink.Publish(context.Background(), testView()))
	assert.Contains(t, buf.String(), "<svg")
}

func TestFileSink_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "forecast.svg")
	sink := NewFileSink(path, NewRenderer(), discardLogger())

	err := sink.Publish(context.Background(), testView())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create temp file")
}

func TestFileSink_Name(t *testing.T) {
	assert.Equal(t, "svg", NewFileSink(Stdout, NewRenderer(), discardLogger()).Name())
}
