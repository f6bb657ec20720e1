// Package logging provides config-driven categorized file-based logging for
// habitcli. Logs are written to <data-dir>/logs/ with separate files per
// category. When debug mode is off, every call is a silent no-op.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryStore  Category = "store"  // Document load/save, fallbacks
	CategoryEngine Category = "engine" // Tracker operations
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.Mutex
	logsDir   string
	debugMode bool
	logLevel  = LevelInfo
)

// Initialize sets up the logging directory. Should be called once at startup
// with the resolved data dir; level is one of debug/info/warn/error. When
// debug is false this is a no-op and no directory is created.
func Initialize(dataDir string, debug bool, level string) error {
	debugMode = debug
	switch level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}

	if !debugMode {
		return nil
	}
	if dataDir == "" {
		return fmt.Errorf("data dir required")
	}

	logsDir = filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	Get(CategoryBoot).Info("=== habitcli logging initialized ===")
	Get(CategoryBoot).Info("logs directory: %s", logsDir)
	return nil
}

// Get returns (or creates) a logger for the given category. Returns a no-op
// logger when debug mode is disabled.
func Get(category Category) *Logger {
	if !debugMode || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed file names keep rotation a matter of deleting old files.
	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(logsDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file: %v\n", err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message (only if level <= debug).
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message (only if level <= info).
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message (only if level <= warn).
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message (always logged if the logger exists).
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// Store logs to the store category.
func Store(format string, args ...interface{}) {
	Get(CategoryStore).Info(format, args...)
}

// StoreWarn logs a warning to the store category.
func StoreWarn(format string, args ...interface{}) {
	Get(CategoryStore).Warn(format, args...)
}

// Engine logs to the engine category.
func Engine(format string, args ...interface{}) {
	Get(CategoryEngine).Info(format, args...)
}
