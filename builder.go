package mlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new initialized Manager with the specified configuration.
func (b *Builder) Build() (*Manager, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}

	m := NewManager()
	if err := m.Init(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Config returns the built configuration after validation.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg.Clone(), nil
}

// FilePath sets the target log file path.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// MaxFileSize sets the rotation threshold in bytes. Zero disables rotation.
func (b *Builder) MaxFileSize(size int64) *Builder {
	b.cfg.MaxFileSize = size
	return b
}

// MaxFileSizeMB sets the rotation threshold in megabytes. Convenience.
func (b *Builder) MaxFileSizeMB(size int64) *Builder {
	b.cfg.MaxFileSize = size * 1024 * 1024
	return b
}

// MaxFiles sets the number of retained files including the active one.
func (b *Builder) MaxFiles(count int64) *Builder {
	b.cfg.MaxFiles = count
	return b
}

// Async selects asynchronous or synchronous dispatch.
func (b *Builder) Async(enable bool) *Builder {
	b.cfg.AsyncMode = enable
	return b
}

// ThreadPoolSize sets the shared worker pool size used in async mode.
// The pool is process-wide; only the first async initialization sizes it.
func (b *Builder) ThreadPoolSize(size int64) *Builder {
	b.cfg.ThreadPoolSize = size
	return b
}

// QueueSize sets the async queue capacity. The queue belongs to the
// process-wide pool, so only the first async initialization sizes it.
func (b *Builder) QueueSize(size int64) *Builder {
	b.cfg.QueueSize = size
	return b
}

// Level sets the minimum level to record.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.MinLevel = level
	return b
}

// LevelString sets the minimum level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.MinLevel = levelVal
	return b
}

// TimestampFormat sets the time format used for record timestamps.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}
