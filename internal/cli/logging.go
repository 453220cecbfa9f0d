package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openDebugLog appends structured logs to path. The terminal belongs to the editor, so
// without a path nothing is logged.
func openDebugLog(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return discardLogger(), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("pid", os.Getpid()), f, nil
}
