package mlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config describes one initialization of the logging core
type Config struct {
	// Target file; rotated backups are created as file_path.1 .. file_path.N-1
	FilePath string `toml:"file_path"`

	// Rotation limits
	MaxFileSize int64 `toml:"max_file_size"` // Bytes per file, 0 disables rotation
	MaxFiles    int64 `toml:"max_files"`     // Retained files including the active one

	// Concurrency mode. The worker pool and its queue are process-wide and
	// sized by the first async initialization; later values are ignored.
	AsyncMode      bool  `toml:"async_mode"`
	ThreadPoolSize int64 `toml:"thread_pool_size"` // Workers in the shared pool (first async init wins)
	QueueSize      int64 `toml:"queue_size"`       // Async queue capacity (first async init wins)

	// Filtering and formatting
	MinLevel        int64  `toml:"min_level"`
	TimestampFormat string `toml:"timestamp_format"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	FilePath:        "",
	MaxFileSize:     10 * 1024 * 1024,
	MaxFiles:        5,
	AsyncMode:       true,
	ThreadPoolSize:  1,
	QueueSize:       8192,
	MinLevel:        LevelInfo,
	TimestampFormat: time.RFC3339Nano,
}

// DefaultConfig returns a copy of the default configuration.
// FilePath is left empty and must be set before Init.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfig returns the default configuration bound to a file path
func NewConfig(filePath string) *Config {
	cfg := DefaultConfig()
	cfg.FilePath = filePath
	return cfg
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("mlog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "mlog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate checks the configuration against the core's contract.
// An invalid configuration is rejected before any resource is touched.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FilePath) == "" {
		return fmtErrorf("file_path cannot be empty")
	}

	if !isValidPath(c.FilePath) {
		return fmtErrorf("invalid file_path: '%s'", c.FilePath)
	}

	if c.MaxFileSize < 0 {
		return fmtErrorf("max_file_size cannot be negative: %d", c.MaxFileSize)
	}

	if c.MaxFiles < 1 {
		return fmtErrorf("max_files must be at least 1: %d", c.MaxFiles)
	}

	if c.ThreadPoolSize < 1 {
		return fmtErrorf("thread_pool_size must be at least 1: %d", c.ThreadPoolSize)
	}

	if c.QueueSize < 1 {
		return fmtErrorf("queue_size must be at least 1: %d", c.QueueSize)
	}

	if !validLevel(c.MinLevel) {
		return fmtErrorf("min_level must be between %d and %d: %d", LevelTrace, LevelCritical, c.MinLevel)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
