// Package logger wraps charm/log with the conversion events officemd reports.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "officemd",
	})
	return &Logger{Logger: l}
}

// Wrap adapts a caller-supplied charm logger. A nil logger discards output.
func Wrap(l *log.Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel resolves a configured level name such as "warn".
func ParseLevel(name string) (log.Level, error) {
	return log.ParseLevel(name)
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(path, direction, format string) {
	l.Debug("conversion started",
		"path", path,
		"direction", direction,
		"format", format)
}

// ConversionCompleted logs a finished conversion and the size of its output
func (l *Logger) ConversionCompleted(path, direction, format string, size int, duration time.Duration) {
	l.Info("conversion completed",
		"path", path,
		"direction", direction,
		"format", format,
		"bytes", size,
		"duration", duration.Round(time.Millisecond))
}

// ConversionFailed logs a conversion error
func (l *Logger) ConversionFailed(path, direction, format string, err error) {
	l.Error("conversion failed",
		"path", path,
		"direction", direction,
		"format", format,
		"error", err)
}

// ConfigLoaded logs the configuration file in effect
func (l *Logger) ConfigLoaded(path string, found bool) {
	l.Debug("config loaded",
		"path", path,
		"found", found)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(path, reason string) {
	l.Warn("file skipped",
		"path", path,
		"reason", reason)
}
