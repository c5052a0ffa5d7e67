package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DebugLogPath is the default path for debug logs
const DebugLogPath = "roboticarm-debug.log"

// openDebugLogger returns a JSON-lines logger writing to path when enabled,
// or a logger that discards everything. The returned func closes the file.
func openDebugLogger(enabled bool, path string) (*slog.Logger, func(), error) {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if path == "" {
		path = DebugLogPath
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Debug("debug start", "log_file", path)

	return logger, func() {
		logger.Debug("debug end")
		_ = f.Close()
	}, nil
}
