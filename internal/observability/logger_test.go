package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gridfit/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestOpenLogFile(t *testing.T) {
	w, err := OpenLogFile("")
	require.NoError(t, err)
	_, err = w.Write([]byte("x"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "gridfit.log")
	w, err = OpenLogFile(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.FileExists(t, path)
}
