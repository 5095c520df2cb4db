package types

// Logger is the structured logging interface used throughout cassandracrud.
//
// Methods accept a message followed by alternating key/value pairs, matching
// the sugared-logger convention. A no-op implementation is used when no
// logger is configured, so implementations never need nil checks.
type Logger interface {
	// Debug logs a debug-level message with key/value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with key/value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with key/value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with key/value pairs.
	Error(msg string, keysAndValues ...any)
}
