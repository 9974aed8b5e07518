package mlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Log records a message at the given level. A no-op when the manager is
// Uninitialized or the message is empty, so callers may log opportunistically
// without checking state. A level outside the contract range is reported
// through the error channel and not written.
func (m *Manager) Log(level int64, message string) {
	if !m.state.Initialized.Load() || message == "" {
		return
	}
	if !validLevel(level) {
		m.reportError("log", fmt.Sprintf("invalid log level: %d", level))
		return
	}
	if level < m.state.Level.Load() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Terminated while waiting on the lock
	if m.dispatch == nil {
		return
	}

	data := m.serializer.serializeRecord(time.Now(), level, message)
	// Error-severity records are synced immediately so they survive a host
	// crash without an explicit Flush
	m.dispatch.write(data, level >= LevelError)
	m.state.TotalRecords.Add(1)
}

// LogException records an exception triple at Error severity. Every field
// independently defaults to empty; absent fields never fail the formatter.
func (m *Manager) LogException(excType, message, stackTrace string) {
	if !m.state.Initialized.Load() {
		return
	}
	if LevelError < m.state.Level.Load() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dispatch == nil {
		return
	}

	data := m.serializer.serializeException(time.Now(), excType, message, stackTrace)
	m.dispatch.write(data, true)
	m.state.TotalRecords.Add(1)
}

// Flush forces all handed-off records onto disk before returning, in either
// dispatch mode. A no-op when Uninitialized.
func (m *Manager) Flush() error {
	if !m.state.Initialized.Load() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dispatch == nil {
		return nil
	}
	if err := m.dispatch.flush(); err != nil {
		m.reportError("flush", err.Error())
		return err
	}
	return nil
}

// SetLevel changes the minimum recorded level without reinitializing. An
// out-of-range level is reported through the error channel and leaves the
// current level unchanged. A no-op when Uninitialized.
func (m *Manager) SetLevel(level int64) {
	if !m.state.Initialized.Load() {
		return
	}
	if !validLevel(level) {
		m.reportError("setLogLevel", fmt.Sprintf("invalid log level: %d", level))
		return
	}
	m.state.Level.Store(level)
}

// GetLevel returns the current minimum level, or the documented default
// (Info) when the manager is Uninitialized. Never fails.
func (m *Manager) GetLevel() int64 {
	if !m.state.Initialized.Load() {
		return DefaultLevel
	}
	return m.state.Level.Load()
}

// dumper renders arbitrary values compactly for Dump.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// Dump logs a labeled, spew-rendered representation of value at debug level.
// Intended for host-side troubleshooting; the rendered text is sanitized
// like any other message, so deep structures stay on one record line.
func (m *Manager) Dump(label string, value any) {
	if !m.state.Initialized.Load() {
		return
	}
	rendered := strings.TrimSpace(dumper.Sdump(value))
	if label != "" {
		rendered = label + " " + rendered
	}
	m.Log(LevelDebug, rendered)
}
