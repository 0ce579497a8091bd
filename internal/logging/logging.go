// Package logging builds the process logger: a terse console handler for
// user-facing diagnostics plus an optional rotating debug log on disk.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Verbose enables debug records on the console. The file log always
	// records everything.
	Verbose bool

	// FilePath enables the rotating file log when non-empty.
	FilePath string

	// ConsoleWriter overrides the console destination; defaults to stderr
	// so command output on stdout stays clean.
	ConsoleWriter io.Writer
}

// Logger is the process-wide logger handle. It embeds the slog.Logger that
// the rest of the program receives.
type Logger struct {
	*slog.Logger

	console *consoleHandler
	file    io.WriteCloser
}

// New assembles the logger from a console handler and, when a file path is
// configured, a rotating file handler fed through a fan-out.
func New(opts Options) (*Logger, error) {
	w := opts.ConsoleWriter
	if w == nil {
		w = os.Stderr
	}

	console := &consoleHandler{writer: w, verbose: opts.Verbose}
	handlers := []slog.Handler{console}

	out := &Logger{console: console}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotator := newRotator(opts.FilePath)
		out.file = rotator

		handlers = append(handlers, slog.NewTextHandler(rotator, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	out.Logger = slog.New(&fanoutHandler{handlers: handlers})
	return out, nil
}

// SetQuiet suppresses or restores console records. The file log is not
// affected. Used while a full-screen view owns the terminal.
func (l *Logger) SetQuiet(quiet bool) {
	l.console.quiet.Store(quiet)
}

// Close flushes and closes the file log if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// consoleHandler prints bare messages without timestamps or level tags;
// the console is for humans, not for grep.
type consoleHandler struct {
	writer  io.Writer
	verbose bool
	quiet   atomic.Bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.verbose
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if h.quiet.Load() {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }

// fanoutHandler sends each record to every handler that wants it.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}

// newRotator builds the rotating file writer. Sizes are small because the
// debug log exists for the last few sessions, not for archival.
func newRotator(path string) *lumberjack.Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}

	if v := envInt("SVNQ_LOG_MAX_SIZE"); v > 0 {
		rotator.MaxSize = v
	}
	if v := envInt("SVNQ_LOG_MAX_BACKUPS"); v >= 0 {
		rotator.MaxBackups = v
	}
	if v := envInt("SVNQ_LOG_MAX_AGE"); v > 0 {
		rotator.MaxAge = v
	}
	return rotator
}

func envInt(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return -1
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}

// DefaultFilePath places the debug log under the user state directory.
// Returns "" when no sensible location exists.
func DefaultFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "svnq", "svnq.log")
}
