package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/mlog"
)

// Demonstrates the reinitialize path: Init on an already-initialized
// manager terminates the previous sink and rebuilds, while other goroutines
// keep logging throughout. The old file keeps its content; the new file
// receives everything after the switch.
func main() {
	fmt.Println("--- Reconfiguration Example ---")

	manager := mlog.NewManager()
	if err := manager.InitPath("./reconfig_logs/first.log"); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		seq := 0
		for {
			select {
			case <-stop:
				return
			default:
				manager.Info(fmt.Sprintf("background seq=%d", seq))
				seq++
				time.Sleep(time.Millisecond)
			}
		}
	}()

	time.Sleep(50 * time.Millisecond)

	// Switch to a new path and a tighter filter without stopping producers
	cfg := mlog.NewConfig("./reconfig_logs/second.log")
	cfg.MinLevel = mlog.LevelWarn
	if err := manager.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "reinit failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Switched to second.log at warn level")

	manager.Warn("this lands in the new file")
	manager.Info("this is filtered out now")

	// Filter can be relaxed at runtime without another reinit
	manager.SetLevel(mlog.LevelInfo)
	manager.Info("visible again after SetLevel")

	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()

	if err := manager.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush failed: %v\n", err)
	}
	fmt.Println("Done; compare first.log and second.log")
}
