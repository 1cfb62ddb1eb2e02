package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// newLogger returns a slog logger writing to ~/.closeguard/closeguard.log.
// The TUI owns the terminal, so logs never go to stdout; on any setup
// failure a discard logger is returned instead.
func newLogger() *slog.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir := filepath.Join(home, ".closeguard")
	_ = os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "closeguard.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
