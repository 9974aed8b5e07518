// Package compat provides logger adapters so host frameworks (gnet,
// fasthttp) can write through the logging core.
package compat

import (
	"fmt"

	"github.com/lixenwraith/mlog"
)

// Builder provides a flexible way to create configured adapters.
// It can use an existing *mlog.Manager instance or create a new one from a
// *mlog.Config.
type Builder struct {
	manager *mlog.Manager
	cfg     *mlog.Config
	err     error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithManager specifies an existing manager to use for the adapters.
// Recommended for applications that already have a central logging core.
// If this is set WithConfig is ignored.
func (b *Builder) WithManager(m *mlog.Manager) *Builder {
	if m == nil {
		b.err = fmt.Errorf("mlog/compat: provided manager cannot be nil")
		return b
	}
	b.manager = m
	return b
}

// WithConfig provides a configuration for a new manager instance.
// Used only when an existing manager is NOT provided via WithManager.
func (b *Builder) WithConfig(cfg *mlog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getManager resolves the manager to be used, creating one if necessary
func (b *Builder) getManager() (*mlog.Manager, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.manager != nil {
		return b.manager, nil
	}

	if b.cfg == nil {
		return nil, fmt.Errorf("mlog/compat: no manager or config provided")
	}

	m := mlog.NewManager()
	if err := m.Init(b.cfg); err != nil {
		return nil, err
	}

	// Cache the newly created manager for subsequent builds with this builder
	b.manager = m
	return m, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	m, err := b.getManager()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(m, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	m, err := b.getManager()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(m, opts...), nil
}

// GetManager returns the underlying *mlog.Manager instance, initializing it
// if it has not been created yet.
func (b *Builder) GetManager() (*mlog.Manager, error) {
	return b.getManager()
}
