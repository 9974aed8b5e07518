package mlog

import (
	"strings"
)

// Log level constants shared with the bridge ABI
const (
	LevelTrace    int64 = 0
	LevelDebug    int64 = 1
	LevelInfo     int64 = 2
	LevelWarn     int64 = 3
	LevelError    int64 = 4
	LevelCritical int64 = 5
)

// DefaultLevel is the minimum level reported before initialization.
const DefaultLevel = LevelInfo

// validLevel checks that a level is within the contract range.
func validLevel(level int64) bool {
	return level >= LevelTrace && level <= LevelCritical
}

// levelToString converts a level to its record tag.
func levelToString(level int64) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level string to its numeric constant.
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, critical)", levelStr)
	}
}

// Manager instance methods for logging at specific levels.

// Trace logs a message at trace level.
func (m *Manager) Trace(message string) {
	m.Log(LevelTrace, message)
}

// Debug logs a message at debug level.
func (m *Manager) Debug(message string) {
	m.Log(LevelDebug, message)
}

// Info logs a message at info level.
func (m *Manager) Info(message string) {
	m.Log(LevelInfo, message)
}

// Warn logs a message at warning level.
func (m *Manager) Warn(message string) {
	m.Log(LevelWarn, message)
}

// Error logs a message at error level.
func (m *Manager) Error(message string) {
	m.Log(LevelError, message)
}

// Critical logs a message at critical level.
func (m *Manager) Critical(message string) {
	m.Log(LevelCritical, message)
}
