package core

import "log/slog"

// Logger is the structured logging surface used by the renderer and loaders.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// DefaultLogger returns the process-wide slog logger
func DefaultLogger() Logger {
	return slog.Default()
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
