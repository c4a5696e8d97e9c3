// Package logging provides structured logging for the analyzer with a
// swappable global logger. The default implementation is backed by hclog.
package logging

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Fields represents structured log fields
type Fields map[string]any

// Logger defines the logging interface used across the analyzer
type Logger interface {
	// Debug logs a debug message with optional fields
	Debug(msg string, fields ...Fields)

	// Info logs an informational message with optional fields
	Info(msg string, fields ...Fields)

	// Warn logs a warning message with optional fields
	Warn(msg string, fields ...Fields)

	// Error logs an error with a message and optional fields
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger that includes the given fields on every entry
	WithFields(fields Fields) Logger
}

type hclogLogger struct {
	logger hclog.Logger
}

// NewDefaultLogger creates a logger writing human-readable output to stderr.
// The level is controlled by the LOG_LEVEL environment variable (defaults to info).
func NewDefaultLogger() Logger {
	return &hclogLogger{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "hls-analysis",
			Level:  hclog.LevelFromString(levelFromEnv()),
			Output: os.Stderr,
		}),
	}
}

// NewLoggerWithLevel creates a logger at an explicit level, ignoring LOG_LEVEL
func NewLoggerWithLevel(level string) Logger {
	return &hclogLogger{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "hls-analysis",
			Level:  hclog.LevelFromString(level),
			Output: os.Stderr,
		}),
	}
}

func levelFromEnv() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

func (l *hclogLogger) Debug(msg string, fields ...Fields) {
	l.logger.Debug(msg, flatten(fields)...)
}

func (l *hclogLogger) Info(msg string, fields ...Fields) {
	l.logger.Info(msg, flatten(fields)...)
}

func (l *hclogLogger) Warn(msg string, fields ...Fields) {
	l.logger.Warn(msg, flatten(fields)...)
}

func (l *hclogLogger) Error(err error, msg string, fields ...Fields) {
	args := flatten(fields)
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.logger.Error(msg, args...)
}

func (l *hclogLogger) WithFields(fields Fields) Logger {
	return &hclogLogger{logger: l.logger.With(flatten([]Fields{fields})...)}
}

// flatten converts Fields maps into hclog's alternating key/value args
func flatten(fields []Fields) []any {
	var args []any
	for _, f := range fields {
		for k, v := range f {
			args = append(args, k, v)
		}
	}
	return args
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewDefaultLogger()
)

// SetGlobalLogger replaces the process-wide logger
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		return
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Fields) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Info logs an informational message using the global logger
func Info(msg string, fields ...Fields) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Fields) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error using the global logger
func Error(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Error(err, msg, fields...)
}

// WithFields returns a logger derived from the global logger with preset fields
func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}
