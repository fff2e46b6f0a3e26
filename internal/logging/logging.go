// Package logging sets up the structured log file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns ~/.local/state/tradeadvance/tradeadvance.log, or ""
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "tradeadvance", "tradeadvance.log")
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

// New returns a JSON logger writing to w at level.
func New(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Open returns a logger appending to path. The terminal belongs to the UI,
// so when the file cannot be opened logs are dropped rather than sent to
// stderr. The returned func closes the file.
func Open(path string, level *slog.LevelVar) (*slog.Logger, func()) {
	if path == "" {
		return New(io.Discard, level), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return New(io.Discard, level), func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return New(io.Discard, level), func() {}
	}
	return New(f, level), func() {
		_ = f.Close()
	}
}
