package mlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAsyncManager(t *testing.T, mutate func(*Config)) (*Manager, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "async.log")
	cfg := NewConfig(path)
	cfg.AsyncMode = true
	cfg.MinLevel = LevelTrace
	if mutate != nil {
		mutate(cfg)
	}

	m := NewManager()
	require.NoError(t, m.Init(cfg))
	t.Cleanup(func() { _ = m.Shutdown() })
	return m, path
}

func TestAsyncLogReachesFileAfterFlush(t *testing.T) {
	m, path := createAsyncManager(t, nil)

	m.Info("async record")
	require.NoError(t, m.Flush())

	assert.Contains(t, readLogFile(t, path), "async record")
}

func TestAsyncConcurrentProducers(t *testing.T) {
	const (
		producers = 8
		perWorker = 200
	)
	m, path := createAsyncManager(t, func(c *Config) {
		c.ThreadPoolSize = 4
	})

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m.Info(fmt.Sprintf("tag-%d-%d", p, i))
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, m.Flush())

	content := readLogFile(t, path)
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	assert.Len(t, lines, producers*perWorker)

	// Every uniquely tagged message is present exactly once
	seen := make(map[string]int, producers*perWorker)
	for _, line := range lines {
		fields := strings.SplitN(line, " ", 3)
		require.Len(t, fields, 3)
		seen[fields[2]]++
	}
	for p := 0; p < producers; p++ {
		for i := 0; i < perWorker; i++ {
			assert.Equal(t, 1, seen[fmt.Sprintf("tag-%d-%d", p, i)])
		}
	}

	assert.Equal(t, uint64(producers*perWorker), m.Stats().Records)
}

// newTinyPoolDispatch builds an async dispatch over its own two-slot pool.
// The process-wide pool keeps its first-creation capacity, so overflow
// behavior has to be exercised against a local one.
func newTinyPoolDispatch(t *testing.T) (*asyncDispatch, *workerPool, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tiny.log")
	sink, err := newRotatingSink(path, 0, 1, nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	pool := &workerPool{jobs: make(chan func(), 2), size: 1}
	go pool.run()

	return newAsyncDispatch(pool, sink, func(string, error) {}), pool, path
}

func TestAsyncFullQueueBlocksProducer(t *testing.T) {
	d, pool, path := newTinyPoolDispatch(t)

	// Park the only worker so nothing is consumed
	started := make(chan struct{})
	gate := make(chan struct{})
	pool.submit(func() {
		close(started)
		<-gate
	})
	<-started

	d.write([]byte("queued-1\n"), false)
	d.write([]byte("queued-2\n"), false)

	// Queue is now full; the next write must block rather than drop
	released := make(chan struct{})
	go func() {
		d.write([]byte("blocked-3\n"), false)
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("write returned while the queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	close(gate)
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("write did not complete after the queue drained")
	}

	require.NoError(t, d.flush())
	content := readLogFile(t, path)
	assert.Contains(t, content, "queued-1")
	assert.Contains(t, content, "queued-2")
	assert.Contains(t, content, "blocked-3")
}

func TestAsyncTinyQueueNoRecordLoss(t *testing.T) {
	d, _, path := newTinyPoolDispatch(t)

	// Far more records than queue slots: producers block repeatedly, yet
	// every record must land
	const producers, perProducer = 4, 100
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				d.write([]byte(fmt.Sprintf("bp-%d-%d\n", p, i)), false)
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, d.flush())

	content := readLogFile(t, path)
	assert.Equal(t, producers*perProducer, strings.Count(content, "bp-"))
}

func TestAsyncShutdownDrains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drain.log")
	cfg := NewConfig(path)
	cfg.MinLevel = LevelTrace

	m := NewManager()
	require.NoError(t, m.Init(cfg))

	for i := 0; i < 100; i++ {
		m.Info(fmt.Sprintf("pre-shutdown-%d", i))
	}
	require.NoError(t, m.Shutdown())

	content := readLogFile(t, path)
	assert.Equal(t, 100, strings.Count(content, "pre-shutdown-"))
}

func TestSharedPoolReusedAcrossReinit(t *testing.T) {
	m, _ := createAsyncManager(t, nil)
	first := processPool
	require.NotNil(t, first)

	// Reinitialize asks for a different size; the existing pool wins
	cfg := NewConfig(filepath.Join(t.TempDir(), "reinit.log"))
	cfg.ThreadPoolSize = 16
	require.NoError(t, m.Init(cfg))

	assert.Same(t, first, processPool)
	assert.NotEqual(t, int64(16), processPool.size)
}

func TestSharedPoolQueueCapacityFixedAtCreation(t *testing.T) {
	m, _ := createAsyncManager(t, nil)
	capBefore := cap(processPool.jobs)

	// A later init asking for a different queue size reuses the existing pool
	cfg := NewConfig(filepath.Join(t.TempDir(), "requeue.log"))
	cfg.QueueSize = 2
	require.NoError(t, m.Init(cfg))

	assert.Equal(t, capBefore, cap(processPool.jobs))
}

func TestErrorRecordReachesDiskWithoutFlush(t *testing.T) {
	m, path := createAsyncManager(t, nil)

	m.Error("must survive a crash")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.Contains(string(data), "must survive a crash")
	}, 2*time.Second, minWaitTime)
}

func TestSharedPoolSurvivesShutdown(t *testing.T) {
	m, _ := createAsyncManager(t, nil)
	require.NotNil(t, processPool)
	before := processPool

	require.NoError(t, m.Shutdown())
	assert.Same(t, before, processPool)

	// A fresh async manager must still be able to log through the same pool
	m2, path2 := createAsyncManager(t, nil)
	m2.Info("after pool survivor")
	require.NoError(t, m2.Flush())
	assert.Contains(t, readLogFile(t, path2), "after pool survivor")
}
