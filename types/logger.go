package types

// Logger defines the logging interface used throughout cassette.
//
// Messages are accompanied by alternating key/value pairs, slog-style:
//
//	logger.Debug("connecting", "host", host, "port", port)
//
// Implementations must be safe for concurrent use. The default logger
// (internal/logging.NopLogger) discards everything; the façade itself never
// logs operation errors, only connection transitions and retry attempts.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, args ...any)

	// Info logs an info-level message.
	Info(msg string, args ...any)

	// Warn logs a warning-level message.
	Warn(msg string, args ...any)

	// Error logs an error-level message.
	Error(msg string, args ...any)

	// Fatal logs a fatal message. Implementations decide whether to exit.
	Fatal(msg string, args ...any)
}
