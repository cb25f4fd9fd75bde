// Package observability builds the process logger.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/san-kum/gridfit/internal/config"
)

// NewLogger returns a slog logger writing to w at the configured level and
// format, and routes gg's internal diagnostics through it.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	gg.SetLogger(logger.With("component", "gg"))
	return logger
}

// OpenLogFile opens path for appending. An empty path yields io.Discard so
// a full-screen TUI is never written over.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
