// Package logger provides modifications to charmbracelet/log's default
// logger to be used across packages.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm logger whose level is the global log level
// at the time of the call; later global level changes do not reach it.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm logger with custom options.
func NewWithConfig(prefix string, level log.Level, caller bool, timestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: timestamp,
		Formatter:       fmt,
	})
}
