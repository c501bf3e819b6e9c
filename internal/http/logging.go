package http

import (
	"context"
	"log/slog"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// requestLogger resolves the logger for a request: the one seeded into the
// context by the RequestLogger middleware when present, the fallback
// otherwise.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return defaultLogger(fallback)
}
