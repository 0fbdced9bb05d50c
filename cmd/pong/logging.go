package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// maxLogSize is the size at which the previous log is rotated out
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns a discarding logger unless debug is set. The terminal
// belongs to the game, so debug logs go to path.
func setupLogging(debug bool, path string) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, nil, fmt.Errorf("failed to rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}
