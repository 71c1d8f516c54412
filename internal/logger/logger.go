package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the level and destination of the logger built by New
type Config struct {
	Level  slog.Level
	Debug  bool
	Writer io.Writer
}

// New builds a text logger on stderr unless another writer is given.
// Debug forces debug level and adds source locations.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := cfg.Level
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
