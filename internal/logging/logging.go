// Package logging provides structured logging for mqlpath.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✓")

// Logger handles structured logging
type Logger struct {
	quiet bool
	out   io.Writer
	base  *log.Logger
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, quiet, debug bool) *Logger {
	base := log.NewWithOptions(w, log.Options{
		Prefix: "mqlpath",
	})

	switch {
	case debug:
		base.SetLevel(log.DebugLevel)
	case quiet:
		base.SetLevel(log.ErrorLevel)
	default:
		base.SetLevel(log.InfoLevel)
	}

	return &Logger{quiet: quiet, out: w, base: base}
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Debugf(format, args...)
}

// Info logs an info message (hidden in quiet mode)
func (l *Logger) Info(format string, args ...interface{}) {
	l.base.Infof(format, args...)
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		l.base.Warnf(format, args...)
	}
}

// Error logs an error message (always shown)
func (l *Logger) Error(format string, args ...interface{}) {
	l.base.Errorf(format, args...)
}

// Success logs a success message (hidden in quiet mode)
func (l *Logger) Success(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, "%s %s\n", successMark, fmt.Sprintf(format, args...))
	}
}

// With returns a logger that adds key/value pairs to every record
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{quiet: l.quiet, out: l.out, base: l.base.With(keyvals...)}
}
