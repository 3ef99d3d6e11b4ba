// Package iologger sets up the slog logger used by GeoDB commands.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/geodb/pkg/config"
)

// LogPath returns the location of the log file inside logDir.
func LogPath(logDir string) string {
	return filepath.Join(logDir, config.AppName+".log")
}

// Init sets the default slog logger according to cfg.
// For the "file" destination the log goes to LogPath(logDir). With append
// the previous log is kept, otherwise the file starts empty.
// It returns a function that closes the log file.
func Init(
	logDir string,
	cfg config.LogConfig,
	append bool,
) (func() error, error) {
	closeFn := func() error { return nil }
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := LogPath(logDir)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return closeFn, OpenLogError(logPath, append, err)
		}
		writer = f
		closeFn = f.Close
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(NewHandler(writer, cfg)))
	return closeFn, nil
}

// NewHandler creates a slog handler writing to w. Unknown formats fall
// back to JSON, unknown levels to info.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var res slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "tint":
		res = slog.NewTextHandler(w, opts)
	default:
		res = slog.NewJSONHandler(w, opts)
	}
	return res.WithAttrs([]slog.Attr{slog.String("app", config.AppName)})
}

// ParseLevel converts a string level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
