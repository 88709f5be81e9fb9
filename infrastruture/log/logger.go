// Package logger provides named, colour-tagged loggers backed by logrus.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

const componentField = "component"

var (
	ErrEmptyName = errors.New("logger name is required")
	ErrNilWriter = errors.New("logger writer is required")
)

// Logger tags every entry with the component that wrote it.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger for the named component. A non-empty color wraps the name.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.Out = w
	l.Level = logrus.InfoLevel
	l.Formatter = &logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	}

	component := name
	if color != "" {
		component = color + name + config.ColorReset
	}
	return &Logger{entry: l.WithField(componentField, component)}, nil
}

// Info logs an informational message.
func (lg *Logger) Info(msg string) {
	lg.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (lg *Logger) Warning(msg string) {
	lg.entry.Warn(msg)
}

// Error logs a failure.
func (lg *Logger) Error(msg string) {
	lg.entry.Error(msg)
}
