package logging

import (
	"log/slog"

	"github.com/cervantes79/cassandracrud/types"
)

// SlogLogger adapts a *slog.Logger to the types.Logger interface.
//
// Used by the CLI; library consumers with their own structured logger can
// implement types.Logger directly instead.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements types.Logger.
var _ types.Logger = (*SlogLogger)(nil)

// NewSlog creates a types.Logger backed by the given slog logger.
//
// Parameters:
//   - logger: The slog logger to delegate to; nil uses slog.Default()
//
// Returns:
//   - *SlogLogger: The adapter
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Debug logs at debug level.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs at info level.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs at error level.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}
