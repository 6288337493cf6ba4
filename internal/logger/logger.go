// Package logger builds the driver's slog.Logger on top of tint.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"containers/internal/config"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open resolves a log output setting: "stderr" (or empty), "stdout",
// "discard", or a file path opened for appending.
func Open(output string) (io.WriteCloser, error) {
	switch strings.ToLower(output) {
	case "stderr", "":
		return nopCloser{os.Stderr}, nil
	case "stdout":
		return nopCloser{os.Stdout}, nil
	case "discard":
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

// New opens cfg.Output and returns a logger writing to it. The caller closes
// the returned writer once logging is done.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	w, err := Open(cfg.Output)
	if err != nil {
		return nil, nil, err
	}
	return NewWithWriter(w, cfg), w, nil
}

// NewWithWriter returns a logger writing to w in cfg.Format at cfg.Level.
func NewWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := ParseLevel(cfg.Level)

	if strings.ToLower(cfg.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func isTerminal(w io.Writer) bool {
	if nc, ok := w.(nopCloser); ok {
		w = nc.Writer
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
