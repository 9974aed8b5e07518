// Package bridge is the stable, panic-free function surface of the logging
// core for foreign callers. Every function forwards to a module-level
// manager and converts internal failures into integer returns (1 success,
// 0 failure) or absorbs them for void calls; nothing ever crosses this
// boundary as a panic. Diagnostics are routed through the manager's error
// callback.
package bridge

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/lixenwraith/mlog"
)

// target holds the manager behind the bridge. The ABI keeps a module-level
// singleton, but the logic is written against an instance so tests and
// embedding hosts can swap it.
var target atomic.Pointer[mlog.Manager]

func init() {
	target.Store(mlog.Default())
}

// Use replaces the manager behind the bridge. Passing nil restores the
// module-level default.
func Use(m *mlog.Manager) {
	if m == nil {
		m = mlog.Default()
	}
	target.Store(m)
}

// manager returns the current bridge target.
func manager() *mlog.Manager {
	return target.Load()
}

// guard runs fn and absorbs any panic; the boundary stays exception-free
// even if the core itself misbehaves. Panics are diagnosed on stderr since
// a panicking path cannot be trusted with the callback machinery.
func guard(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "mlog: panic in %s: %v\n", operation, r)
		}
	}()
	fn()
}

// Init configures and initializes the logging core. Returns 1 on success,
// 0 on failure.
func Init(path string, maxFileSize int64, maxFiles int64, asyncMode int, threadPoolSize int64, minLevel int64) int {
	cfg := mlog.NewConfig(path)
	cfg.MaxFileSize = maxFileSize
	cfg.MaxFiles = maxFiles
	cfg.AsyncMode = asyncMode != 0
	cfg.ThreadPoolSize = threadPoolSize
	cfg.MinLevel = minLevel

	result := 0
	guard("init", func() {
		if err := manager().Init(cfg); err == nil {
			result = 1
		}
	})
	return result
}

// InitDefault initializes the logging core with default settings bound to
// path. Returns 1 on success, 0 on failure.
func InitDefault(path string) int {
	result := 0
	guard("initDefault", func() {
		if err := manager().InitPath(path); err == nil {
			result = 1
		}
	})
	return result
}

// LogMessage records a message at the given level. Void and silently safe.
func LogMessage(level int64, message string) {
	guard("logMessage", func() {
		manager().Log(level, message)
	})
}

// LogException records an exception triple at Error severity. Void and
// silently safe.
func LogException(excType, message, stackTrace string) {
	guard("logException", func() {
		manager().LogException(excType, message, stackTrace)
	})
}

// Flush forces pending records onto disk. Void and silently safe.
func Flush() {
	guard("flush", func() {
		_ = manager().Flush()
	})
}

// SetLogLevel changes the minimum recorded level. Void and silently safe.
func SetLogLevel(level int64) {
	guard("setLogLevel", func() {
		manager().SetLevel(level)
	})
}

// GetLogLevel returns the current minimum level, defaulting to Info when
// uninitialized or on failure.
func GetLogLevel() int64 {
	level := mlog.DefaultLevel
	guard("getLogLevel", func() {
		level = manager().GetLevel()
	})
	return level
}

// IsInit reports initialization state as 1 or 0.
func IsInit() int {
	result := 0
	guard("isInit", func() {
		if manager().IsInitialized() {
			result = 1
		}
	})
	return result
}

// Terminate flushes and releases the core's resources. Void and silently
// safe; idempotent.
func Terminate() {
	guard("terminate", func() {
		_ = manager().Shutdown()
	})
}
