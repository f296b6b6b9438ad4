package batch

import "github.com/sirupsen/logrus"

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed information, typically of interest only when diagnosing problems.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for informational messages that highlight the progress of the application.
	LogLevelInfo
	// LogLevelWarn is for potentially harmful situations that might require attention.
	LogLevelWarn
	// LogLevelError is for error events that might still allow the application to continue running.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface for logging within the batching engine.
// Implementations can route logs to various destinations.
// The Logger is optional - if not provided, no logging occurs.
type Logger interface {
	// Log writes a log message at the specified level.
	// The message is formatted using fmt.Sprintf if args are provided.
	Log(level LogLevel, format string, args ...any)

	// Debug logs a debug-level message.
	Debug(format string, args ...any)

	// Info logs an info-level message.
	Info(format string, args ...any)

	// Warn logs a warning-level message.
	Warn(format string, args ...any)

	// Error logs an error-level message.
	Error(format string, args ...any)
}

// NoOpLogger is a logger that discards all log messages.
// It implements the Logger interface but performs no operations.
// This is the default logger when none is specified.
type NoOpLogger struct{}

// Log implements the Logger interface.
func (n *NoOpLogger) Log(level LogLevel, format string, args ...any) {}

// Debug implements the Logger interface.
func (n *NoOpLogger) Debug(format string, args ...any) {}

// Info implements the Logger interface.
func (n *NoOpLogger) Info(format string, args ...any) {}

// Warn implements the Logger interface.
func (n *NoOpLogger) Warn(format string, args ...any) {}

// Error implements the Logger interface.
func (n *NoOpLogger) Error(format string, args ...any) {}

// LogrusLogger routes log messages to a logrus logger, mapping log levels
// one to one. Level filtering is left to logrus.
type LogrusLogger struct {
	logger logrus.FieldLogger
}

// NewLogrusLogger creates a Logger backed by l. If l is nil, the logrus
// standard logger is used.
func NewLogrusLogger(l logrus.FieldLogger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{logger: l}
}

// Log implements the Logger interface.
func (l *LogrusLogger) Log(level LogLevel, format string, args ...any) {
	switch level {
	case LogLevelDebug:
		l.logger.Debugf(format, args...)
	case LogLevelInfo:
		l.logger.Infof(format, args...)
	case LogLevelWarn:
		l.logger.Warnf(format, args...)
	case LogLevelError:
		l.logger.Errorf(format, args...)
	default:
		l.logger.Printf(format, args...)
	}
}

// Debug implements the Logger interface.
func (l *LogrusLogger) Debug(format string, args ...any) {
	l.Log(LogLevelDebug, format, args...)
}

// Info implements the Logger interface.
func (l *LogrusLogger) Info(format string, args ...any) {
	l.Log(LogLevelInfo, format, args...)
}

// Warn implements the Logger interface.
func (l *LogrusLogger) Warn(format string, args ...any) {
	l.Log(LogLevelWarn, format, args...)
}

// Error implements the Logger interface.
func (l *LogrusLogger) Error(format string, args ...any) {
	l.Log(LogLevelError, format, args...)
}
