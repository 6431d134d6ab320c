// Package util provides common utilities including logging helpers,
// file system paths and small generic helpers.
package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger writing to w at the named level. Unknown level
// names fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flashtimer",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// OpenLogFile opens (appending) the log file inside dir. The terminal UI owns
// stdout, so interactive runs log here instead.
func OpenLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// LogError logs an error with context if it is non-nil.
func LogError(logger *log.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, "err", err)
	}
}
