package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/mlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[mlog]
  file_path = "./simple_logs/app.log"
  max_file_size = 1048576
  max_files = 3
  async_mode = false
  min_level = 1 # Debug
`

func main() {
	fmt.Println("--- Simple Logging Core Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := mlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	manager := mlog.NewManager()
	manager.SetErrorCallback(func(message, operation string) {
		fmt.Fprintf(os.Stderr, "diagnostic [%s]: %s\n", operation, message)
	})

	if err := manager.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.Debug("core initialized")
	manager.Info("hello from the host application")
	manager.Warn("disk space is getting low")
	manager.LogException("NullReferenceException",
		"Object reference not set to an instance of an object",
		"at Game.Update()\nat Engine.Tick()")

	if err := manager.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Flush failed: %v\n", err)
	}

	stats := manager.Stats()
	fmt.Printf("Wrote %d records (%d rotations) in %v\n", stats.Records, stats.Rotations, stats.Uptime)
	fmt.Printf("Log written to %s\n", cfg.FilePath)
}
