package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// newFileLogger opens the log file and returns a logger writing to it.
// The terminal belongs to the game, so interactive commands never log to
// stderr. The returned close function must be called on exit.
func newFileLogger(customPath, level string) (*log.Logger, func(), error) {
	path, err := getLogPath(customPath)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           parseLogLevel(level),
	})
	return logger, func() { _ = f.Close() }, nil
}

// newStderrLogger is used by the SSH server, which does not own a terminal.
func newStderrLogger(level string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "capydino-ssh",
		Level:           parseLogLevel(level),
	})
}

// parseLogLevel falls back to info for unknown levels.
func parseLogLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// getLogPath determines the log file path to use.
// Priority: customPath > XDG state directory. An unusable custom path falls
// back to the XDG default.
func getLogPath(customPath string) (string, error) {
	if customPath != "" {
		if strings.HasPrefix(customPath, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				customPath = filepath.Join(home, customPath[2:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err == nil {
			if f, err := os.OpenFile(customPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600); err == nil {
				_ = f.Close()
				return customPath, nil
			}
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use log path %s, falling back to XDG default\n", customPath)
	}

	logPath, err := xdg.StateFile(filepath.Join("capydino", "capydino.log"))
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}
	return logPath, nil
}
