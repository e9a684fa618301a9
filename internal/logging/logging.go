// ABOUTME: Structured logger construction for the CLI and MCP server.
// ABOUTME: Logs to stderr, or to a size-rotated file when one is configured.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// File, when set, receives logs instead of stderr. The MCP server needs
	// this because stdio carries the protocol.
	File  string
	Level string
}

// New builds a logger for the given options.
func New(opts Options) *log.Logger {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "gym",
		ReportTimestamp: opts.File != "",
	})
	logger.SetLevel(ParseLevel(opts.Level))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a log level, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
