// =============================================================================
// Trucking Delivery Tracker - Logging
// =============================================================================
//
// A small leveled logger. Messages are printf-style and written one per line
// as "[LEVEL] message". The CLI points it at stderr (and the log file when one
// is configured); tests use Nop or a bytes.Buffer.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Logger is the logging interface used across the application.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a config value ("debug", "info", "warn", "error").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// =============================================================================
// WRITER LOGGER
// =============================================================================

type writerLogger struct {
	mu         sync.Mutex
	w          io.Writer
	level      Level
	timestamps bool
}

// New returns a Logger that writes messages at or above level to w.
func New(w io.Writer, level Level) Logger {
	return &writerLogger{w: w, level: level}
}

// NewWithTimestamps is like New but prefixes each line with the local time.
// Used for the log file, where lines outlive the session.
func NewWithTimestamps(w io.Writer, level Level) Logger {
	return &writerLogger{w: w, level: level, timestamps: true}
}

func (l *writerLogger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }
func (l *writerLogger) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args...) }
func (l *writerLogger) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args...) }
func (l *writerLogger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

func (l *writerLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	line := fmt.Sprintf("[%s] "+msg, append([]interface{}{level}, args...)...)
	if l.timestamps {
		line = time.Now().Format("2006-01-02 15:04:05") + " " + line
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, line)
}

// =============================================================================
// FAN-OUT AND NO-OP
// =============================================================================

type multiLogger []Logger

// Multi sends every message to all of the given loggers.
func Multi(loggers ...Logger) Logger {
	return multiLogger(loggers)
}

func (m multiLogger) Debug(msg string, args ...interface{}) {
	for _, l := range m {
		l.Debug(msg, args...)
	}
}

func (m multiLogger) Info(msg string, args ...interface{}) {
	for _, l := range m {
		l.Info(msg, args...)
	}
}

func (m multiLogger) Warn(msg string, args ...interface{}) {
	for _, l := range m {
		l.Warn(msg, args...)
	}
}

func (m multiLogger) Error(msg string, args ...interface{}) {
	for _, l := range m {
		l.Error(msg, args...)
	}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
