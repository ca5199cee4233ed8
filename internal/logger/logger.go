package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// TODO: Allow configuration of log level (e.g., via env var or config file)

var defaultLogger *slog.Logger

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "flags-migrate", "app.log"), nil
}

// setupLogging configures the default logger based on whether to log to file and/or stderr.
func setupLogging(logToFile bool, logToStderr bool) {
	if !logToFile && !logToStderr {
		// Default to stderr if neither is specified, to ensure logs aren't lost.
		logToStderr = true
	}

	var writers []io.Writer

	if logToFile {
		logFilePath, err := getLogFilePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
		} else {
			logDir := filepath.Dir(logFilePath)
			if err := os.MkdirAll(logDir, 0750); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating log directory %s: %v. File logging disabled.\n", logDir, err)
			} else {
				file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, err)
				} else {
					writers = append(writers, file)
				}
			}
		}
	}

	if logToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		// Fallback if all writers failed to initialize (should be rare)
		finalWriter = os.Stderr
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	// JSON handler for structured logging consistency.
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: slog.LevelInfo})
	defaultLogger = slog.New(handler)
}

// InitLogger initializes the logger based on the execution mode (TUI or CLI).
// It MUST be called once at the beginning of the application. In TUI mode,
// stderr logging is suppressed so log lines do not corrupt the display.
func InitLogger(isTUI bool) {
	setupLogging(true, !isTUI)
}

// SetLogger allows replacing the default logger instance, e.g. for testing.
// Should be used after InitLogger.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		fmt.Fprintln(os.Stderr, "Error: Logger accessed before InitLogger was called. Initializing with defaults.")
		InitLogger(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message. Structured key-value
// logging via Info is preferred.
func Infof(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
