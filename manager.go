package mlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ErrorCallback receives internal failure diagnostics as
// (message, originating operation name).
type ErrorCallback func(message string, operation string)

// callbackHolder wraps the callback for atomic.Value storage, which rejects
// inconsistently-typed and nil values.
type callbackHolder struct {
	cb ErrorCallback
}

// Manager is the logging core. It owns the rotating sink, the dispatch mode
// chosen at initialization, the runtime level filter and the error callback.
//
// Lifecycle: a manager starts Uninitialized, moves to Initialized through a
// successful Init, and back through Shutdown. Calling Init on an initialized
// manager terminates the previous period first (the reinitialize path),
// serialized with in-flight logging under one lock.
type Manager struct {
	mu    sync.Mutex
	state managerState

	// Guarded by mu for the lifetime of one initialized period
	cfg        *Config
	sink       *rotatingSink
	dispatch   dispatcher
	serializer *serializer

	errorCallback atomic.Value // stores callbackHolder
}

// NewManager creates a manager in the Uninitialized state.
func NewManager() *Manager {
	m := &Manager{
		serializer: newSerializer(),
	}
	m.state.Level.Store(DefaultLevel)
	m.state.StartTime.Store(time.Now())
	return m
}

// Init validates the configuration and, on success, transitions the manager
// to Initialized. An initialized manager is fully terminated first, so a
// failed reinitialization leaves logging stopped rather than half-working.
// No resource is touched before validation passes.
func (m *Manager) Init(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Initialized.Load() {
		// Reinit path: flush and release the previous sink first. A flush
		// failure here is diagnostic, not fatal; resources are released
		// regardless.
		if err := m.shutdownLocked(); err != nil {
			m.reportError("init", err.Error())
		}
	}

	c := cfg.Clone()
	c.FilePath = normalizePath(c.FilePath)

	if err := ensureDir(c.FilePath); err != nil {
		m.reportError("init", err.Error())
		return err
	}

	sink, err := newRotatingSink(c.FilePath, c.MaxFileSize, c.MaxFiles, m.sinkError, &m.state.TotalRotations)
	if err != nil {
		m.reportError("init", err.Error())
		return err
	}

	var d dispatcher
	if c.AsyncMode {
		pool := sharedPool(c.ThreadPoolSize, c.QueueSize)
		d = newAsyncDispatch(pool, sink, m.sinkError)
	} else {
		d = newSyncDispatch(sink, m.sinkError)
	}

	m.cfg = c
	m.sink = sink
	m.dispatch = d
	m.serializer.setTimestampFormat(c.TimestampFormat)
	m.state.Level.Store(c.MinLevel)
	m.state.Initialized.Store(true)
	return nil
}

// InitPath initializes with the default configuration bound to path.
func (m *Manager) InitPath(path string) error {
	return m.Init(NewConfig(path))
}

// Shutdown flushes pending records and releases the sink, returning the
// manager to Uninitialized. Idempotent: repeated calls, including on an
// Uninitialized manager, are no-ops beyond the first. A flush failure never
// prevents resource release.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownLocked()
}

// shutdownLocked is the termination sequence. Caller holds m.mu.
func (m *Manager) shutdownLocked() error {
	if !m.state.Initialized.Load() {
		return nil
	}
	m.state.Initialized.Store(false)

	var finalErr error
	if m.dispatch != nil {
		if err := m.dispatch.drain(); err != nil {
			finalErr = combineErrors(finalErr, err)
		}
	}
	if m.sink != nil {
		if err := m.sink.Close(); err != nil {
			finalErr = combineErrors(finalErr, err)
		}
	}

	m.dispatch = nil
	m.sink = nil
	m.cfg = nil

	if finalErr != nil {
		m.reportError("terminate", finalErr.Error())
	}
	return finalErr
}

// IsInitialized reports the lifecycle state. Lock-free snapshot.
func (m *Manager) IsInitialized() bool {
	return m.state.Initialized.Load()
}

// SetErrorCallback registers the diagnostic sink for internal failures.
// Passing nil clears it, restoring the stderr fallback.
func (m *Manager) SetErrorCallback(cb ErrorCallback) {
	m.errorCallback.Store(callbackHolder{cb: cb})
}

// reportError routes an internal failure to the registered callback. A
// panicking callback is recovered and diagnostics fall back to stderr; a
// misbehaving callback must never destabilize the manager.
func (m *Manager) reportError(operation, message string) {
	if h, ok := m.errorCallback.Load().(callbackHolder); ok && h.cb != nil {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "mlog: error callback panicked in %s: %v\n", operation, r)
				fmt.Fprintf(os.Stderr, "mlog: error in %s: %s\n", operation, message)
			}
		}()
		h.cb(message, operation)
		return
	}
	fmt.Fprintf(os.Stderr, "mlog: error in %s: %s\n", operation, message)
}

// sinkError adapts reportError for the sink and dispatchers.
func (m *Manager) sinkError(operation string, err error) {
	m.reportError(operation, err.Error())
}
