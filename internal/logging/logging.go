// Package logging builds the leveled stderr logger used by every command.
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
)

// Prefix is printed before every log line.
const Prefix = "todo"

// New creates a logger writing to w with the level and formatter from cfg.
// cfg.Debug forces the debug level.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.LogFormat),
		ReportTimestamp: cfg.Debug,
		Prefix:          Prefix,
	})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
// Unknown values fall back to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
