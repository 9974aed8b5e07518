package mlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "", cfg.FilePath)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, int64(5), cfg.MaxFiles)
	assert.True(t, cfg.AsyncMode)
	assert.Equal(t, int64(1), cfg.ThreadPoolSize)
	assert.Equal(t, int64(8192), cfg.QueueSize)
	assert.Equal(t, LevelInfo, cfg.MinLevel)
	assert.Equal(t, time.RFC3339Nano, cfg.TimestampFormat)
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/tmp/app.log")

	assert.Equal(t, "/tmp/app.log", cfg.FilePath)
	assert.NoError(t, cfg.Validate())
}

func TestConfigClone(t *testing.T) {
	cfg1 := NewConfig("/tmp/a.log")
	cfg1.MinLevel = LevelDebug

	cfg2 := cfg1.Clone()
	assert.Equal(t, cfg1.FilePath, cfg2.FilePath)
	assert.Equal(t, cfg1.MinLevel, cfg2.MinLevel)

	// Modify original
	cfg1.MinLevel = LevelError

	// Verify clone unchanged
	assert.Equal(t, LevelDebug, cfg2.MinLevel)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "unbounded size is valid",
			modify:    func(c *Config) { c.MaxFileSize = 0 },
			wantError: "",
		},
		{
			name:      "empty path",
			modify:    func(c *Config) { c.FilePath = "" },
			wantError: "file_path cannot be empty",
		},
		{
			name:      "whitespace path",
			modify:    func(c *Config) { c.FilePath = "   " },
			wantError: "file_path cannot be empty",
		},
		{
			name:      "current directory as path",
			modify:    func(c *Config) { c.FilePath = "." },
			wantError: "invalid file_path",
		},
		{
			name:      "root directory as path",
			modify:    func(c *Config) { c.FilePath = "/" },
			wantError: "invalid file_path",
		},
		{
			name:      "negative max file size",
			modify:    func(c *Config) { c.MaxFileSize = -1 },
			wantError: "max_file_size cannot be negative",
		},
		{
			name:      "zero max files",
			modify:    func(c *Config) { c.MaxFiles = 0 },
			wantError: "max_files must be at least 1",
		},
		{
			name:      "negative max files",
			modify:    func(c *Config) { c.MaxFiles = -3 },
			wantError: "max_files must be at least 1",
		},
		{
			name:      "zero thread pool",
			modify:    func(c *Config) { c.ThreadPoolSize = 0 },
			wantError: "thread_pool_size must be at least 1",
		},
		{
			name:      "zero queue size",
			modify:    func(c *Config) { c.QueueSize = 0 },
			wantError: "queue_size must be at least 1",
		},
		{
			name:      "level below range",
			modify:    func(c *Config) { c.MinLevel = -1 },
			wantError: "min_level must be between",
		},
		{
			name:      "level above range",
			modify:    func(c *Config) { c.MinLevel = 6 },
			wantError: "min_level must be between",
		},
		{
			name:      "empty timestamp format",
			modify:    func(c *Config) { c.TimestampFormat = " " },
			wantError: "timestamp_format cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("/tmp/test.log")
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cfg, err := NewBuilder().
		FilePath("/tmp/built.log").
		MaxFileSizeMB(1).
		MaxFiles(3).
		Async(false).
		LevelString("warn").
		Config()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/built.log", cfg.FilePath)
	assert.Equal(t, int64(1024*1024), cfg.MaxFileSize)
	assert.Equal(t, int64(3), cfg.MaxFiles)
	assert.False(t, cfg.AsyncMode)
	assert.Equal(t, LevelWarn, cfg.MinLevel)
}

func TestBuilderInvalidLevel(t *testing.T) {
	_, err := NewBuilder().
		FilePath("/tmp/built.log").
		LevelString("loud").
		Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level string")
}

func TestBuilderMissingPath(t *testing.T) {
	_, err := NewBuilder().Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file_path cannot be empty")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"critical", LevelCritical, false},
		{"verbose", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
