package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/mlog"
)

const (
	producers          = 8
	recordsPerProducer = 5000
)

// Hammers the async path: many producers against a small queue, so the
// blocking overflow policy is exercised constantly. Every record must still
// land on disk.
func main() {
	fmt.Println("--- Async Stress Example ---")

	cfg := mlog.NewConfig("./stress_logs/stress.log")
	cfg.AsyncMode = true
	cfg.ThreadPoolSize = 2
	cfg.QueueSize = 64 // Deliberately small to force producer backpressure
	cfg.MaxFileSize = 512 * 1024
	cfg.MaxFiles = 4

	manager := mlog.NewManager()
	if err := manager.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	start := time.Now()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < recordsPerProducer; i++ {
				manager.Info(fmt.Sprintf("producer=%d seq=%d", id, i))
			}
		}(p)
	}
	wg.Wait()

	if err := manager.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush failed: %v\n", err)
	}

	stats := manager.Stats()
	fmt.Printf("Wrote %d records, %d rotations, in %v\n",
		stats.Records, stats.Rotations, time.Since(start))
}
