// Package logger configures the structured logger every subcommand shares:
// a slog.Logger over either stderr or a rotating file, with a severity
// level filter and a choice of text or JSON rendering.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Severity is the minimum level a log record must meet to be emitted.
type Severity int

const (
	// OFF suppresses all logging.
	OFF Severity = iota
	ERROR
	WARNING
	INFO
	DEBUG
	TRACE
)

// traceLevel sits below slog's Debug so that Tracef can be filtered out
// independently of Debugf.
const traceLevel = slog.LevelDebug - 4

func (s Severity) slogLevel() slog.Level {
	switch s {
	case TRACE:
		return traceLevel
	case DEBUG:
		return slog.LevelDebug
	case INFO:
		return slog.LevelInfo
	case WARNING:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		// OFF: set a level no record can ever reach.
		return slog.LevelError + 4
	}
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Config selects where log output goes and how verbose it is.
type Config struct {
	// File is the path to a log file. If empty, logs go to stderr.
	File string

	// MaxSizeMB is the size at which the log file is rotated, passed
	// straight through to lumberjack.
	MaxSizeMB int

	// Format is either "text" or "json".
	Format string

	// Severity is the minimum level emitted.
	Severity Severity
}

// Configure installs the process-wide logger described by cfg, returning an
// io.Closer that flushes and closes the underlying file (a no-op when
// logging to stderr).
func Configure(cfg Config) io.Closer {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxSizeMB,
		}
		w = lj
		closer = lj
	}

	opts := &slog.HandlerOptions{Level: cfg.Severity.slogLevel()}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	defaultLogger = slog.New(handler)
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func log(level slog.Level, format string, args ...any) {
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}
	defaultLogger.Log(context.Background(), level, sprintf(format, args...))
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Tracef logs at the lowest severity, for per-request detail.
func Tracef(format string, args ...any) { log(traceLevel, format, args...) }

// Debugf logs diagnostic detail useful when investigating a specific issue.
func Debugf(format string, args ...any) { log(slog.LevelDebug, format, args...) }

// Infof logs routine operational messages.
func Infof(format string, args ...any) { log(slog.LevelInfo, format, args...) }

// Warnf logs recoverable anomalies.
func Warnf(format string, args ...any) { log(slog.LevelWarn, format, args...) }

// Errorf logs failures.
func Errorf(format string, args ...any) { log(slog.LevelError, format, args...) }
