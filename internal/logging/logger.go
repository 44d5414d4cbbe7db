package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent.
const LogLevelEnvVar = "DEVSCAN_LOG_LEVEL"

// Initialize creates the global logger at the given level.
// An empty level falls back to DEVSCAN_LOG_LEVEL, and if that is empty too
// the logger is a no-op.
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	// Console output on stderr, stdout carries scan results
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogInventoryLoaded records the outcome of an inventory load.
func LogInventoryLoaded(path string, records, rows, skipped, duplicates int) {
	Info("inventory loaded",
		zap.String("path", path),
		zap.Int("records", records),
		zap.Int("rows", rows),
		zap.Int("skipped", skipped),
		zap.Int("duplicates", duplicates),
	)
}

// LogScan records one processed scan.
func LogScan(id string, found bool) {
	Debug("scan processed",
		zap.String("id", id),
		zap.Bool("found", found),
	)
}

// LogSessionEnd records the final session counters and why the loop ended.
func LogSessionEnd(reason string, scans, found int) {
	Info("scan session ended",
		zap.String("reason", reason),
		zap.Int("scans", scans),
		zap.Int("found", found),
		zap.Int("not_found", scans-found),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		// stderr sync fails on some terminals; nothing to do about it
		_ = logger.Sync()
	}
}
