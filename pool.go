package mlog

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	// Minimum wait time used when polling for drain completion
	minWaitTime = 10 * time.Millisecond
	// Upper bound on waiting for async records to reach the sink
	drainTimeout = 5 * time.Second
)

// workerPool is the process-wide pool backing every async manager. It is
// created lazily on the first async initialization and reused by later
// initializations; Shutdown never tears it down. Reusing an existing pool is
// expected on reinitialization, so the requested size only applies to the
// first creation.
type workerPool struct {
	jobs chan func()
	size int64
}

var (
	poolMu      sync.Mutex
	processPool *workerPool
)

// sharedPool returns the process-wide worker pool, creating it on first use.
func sharedPool(workers, queueSize int64) *workerPool {
	poolMu.Lock()
	defer poolMu.Unlock()

	if processPool != nil {
		return processPool
	}

	p := &workerPool{
		jobs: make(chan func(), queueSize),
		size: workers,
	}
	for i := int64(0); i < workers; i++ {
		go p.run()
	}
	processPool = p
	return p
}

// run executes jobs for the lifetime of the process.
func (p *workerPool) run() {
	for job := range p.jobs {
		job()
	}
}

// submit enqueues a job. Blocks when the queue is full: producers wait
// rather than drop records.
func (p *workerPool) submit(job func()) {
	p.jobs <- job
}

// dispatcher is the mode-specific path between the manager and the sink.
// The sync/async distinction is resolved entirely at initialization; the
// manager dispatches through this interface without knowing the mode.
type dispatcher interface {
	// write hands one serialized record to the sink. The caller's buffer is
	// only valid for the duration of the call. flushAfter requests a sink
	// sync once the record hits the file; the manager sets it for
	// error-severity records so they survive a host crash without an
	// explicit flush.
	write(data []byte, flushAfter bool)
	// flush forces all handed-off records onto disk before returning.
	flush() error
	// drain waits for in-flight records without syncing the sink.
	drain() error
}

// syncDispatch writes through the sink on the caller's goroutine.
type syncDispatch struct {
	sink   *rotatingSink
	report func(op string, err error)
}

func newSyncDispatch(sink *rotatingSink, report func(op string, err error)) *syncDispatch {
	return &syncDispatch{sink: sink, report: report}
}

func (d *syncDispatch) write(data []byte, flushAfter bool) {
	if _, err := d.sink.Write(data); err != nil {
		d.report("log", err)
	}
	if flushAfter {
		if err := d.sink.Sync(); err != nil {
			d.report("flush", err)
		}
	}
}

func (d *syncDispatch) flush() error {
	return d.sink.Sync()
}

func (d *syncDispatch) drain() error {
	return nil
}

// asyncDispatch enqueues records into the shared worker pool. The enqueue
// blocks when the pool queue is full, so no record is ever dropped at the
// cost of producer latency.
type asyncDispatch struct {
	pool    *workerPool
	sink    *rotatingSink
	report  func(op string, err error)
	pending atomic.Int64
}

func newAsyncDispatch(pool *workerPool, sink *rotatingSink, report func(op string, err error)) *asyncDispatch {
	return &asyncDispatch{pool: pool, sink: sink, report: report}
}

func (d *asyncDispatch) write(data []byte, flushAfter bool) {
	// The serializer reuses its buffer, the worker needs its own copy
	buf := make([]byte, len(data))
	copy(buf, data)

	d.pending.Add(1)
	d.pool.submit(func() {
		defer d.pending.Add(-1)
		if _, err := d.sink.Write(buf); err != nil {
			d.report("log", err)
		}
		if flushAfter {
			if err := d.sink.Sync(); err != nil {
				d.report("flush", err)
			}
		}
	})
}

func (d *asyncDispatch) flush() error {
	if err := d.drain(); err != nil {
		return err
	}
	return d.sink.Sync()
}

// drain waits until every enqueued record for this dispatch has been
// written. The pool consumes the queue continuously, so the wait is bounded.
func (d *asyncDispatch) drain() error {
	deadline := time.Now().Add(drainTimeout)
	for d.pending.Load() > 0 {
		if time.Now().After(deadline) {
			return fmtErrorf("timeout waiting for %d pending records to drain (%v)", d.pending.Load(), drainTimeout)
		}
		time.Sleep(minWaitTime)
	}
	return nil
}
