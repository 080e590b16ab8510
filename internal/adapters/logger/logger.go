// Package logger implements the report sink using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
)

// Levels of the report channels. Verbose and quiet sit outside the slog defaults.
const (
	LevelVerbose = slog.Level(domain.LogLevelVerbose)
	LevelQuiet   = slog.Level(domain.LogLevelQuiet)
)

// Verbosity selects which channels are written.
type Verbosity int

const (
	// VerbosityNormal writes info and above.
	VerbosityNormal Verbosity = iota
	// VerbosityVerbose also writes verbose messages.
	VerbosityVerbose
	// VerbosityQuiet writes only errors and quiet messages.
	VerbosityQuiet
)

func (v Verbosity) level() slog.Level {
	switch v {
	case VerbosityVerbose:
		return LevelVerbose
	case VerbosityQuiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild must be called with mu held for writing, or before l is shared.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		opts.ReplaceAttr = channelName
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// channelName reports levels by channel, so quiet records read "QUIET" instead of "ERROR+4".
func channelName(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(strings.ToUpper(domain.LogLevel(level).String()))
	}
	return a
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbosity selects the channels that are written.
func (l *Logger) SetVerbosity(v Verbosity) {
	l.level.Set(v.level())
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Verbose logs a message shown only in verbose mode.
func (l *Logger) Verbose(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Quiet logs a message that is shown even in quiet mode.
func (l *Logger) Quiet(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Log(context.Background(), LevelQuiet, msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
