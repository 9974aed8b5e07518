package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/mlog"
)

// GnetAdapter wraps the logging core to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	manager      *mlog.Manager
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(manager *mlog.Manager, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		manager: manager,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.manager.Debug("gnet: " + fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.manager.Info("gnet: " + fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.manager.Warn("gnet: " + fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.manager.Error("gnet: " + fmt.Sprintf(format, args...))
}

// Fatalf logs at critical level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.manager.Critical("gnet: " + msg)

	// Ensure the record reaches disk before exit
	_ = a.manager.Flush()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
