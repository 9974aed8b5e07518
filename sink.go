package mlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// rotatingSink appends records to the active file and rolls it into a
// bounded ring of numbered backups (path.1 .. path.N-1) once a write would
// push the file past maxBytes. A maxBytes of 0 disables rotation entirely.
//
// The sink has its own mutex: async workers write without holding the
// manager's dispatch lock.
type rotatingSink struct {
	mu        sync.Mutex
	path      string
	maxBytes  int64
	maxFiles  int64
	file      *os.File
	size      int64
	report    func(op string, err error)
	rotations *atomic.Uint64
}

// newRotatingSink opens (or creates) the active file in append mode.
// report receives diagnostics for failures the sink absorbs; rotations, when
// non-nil, is incremented on every completed roll.
func newRotatingSink(path string, maxBytes, maxFiles int64, report func(op string, err error), rotations *atomic.Uint64) (*rotatingSink, error) {
	if report == nil {
		report = func(string, error) {}
	}

	path = normalizePath(path)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	s := &rotatingSink{
		path:      path,
		maxBytes:  maxBytes,
		maxFiles:  maxFiles,
		file:      file,
		report:    report,
		rotations: rotations,
	}
	if fi, errStat := file.Stat(); errStat == nil {
		s.size = fi.Size()
	}
	return s, nil
}

// Write appends one serialized record, rotating first when the record would
// push the active file past the size threshold. A failed rotation does not
// lose the record: the sink reopens the active file and appends anyway.
func (s *rotatingSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return 0, fmtErrorf("log sink is closed")
	}

	if s.maxBytes > 0 && s.size > 0 && s.size+int64(len(p)) > s.maxBytes {
		if err := s.rotate(); err != nil {
			s.report("rotate", err)
			if s.file == nil {
				// Keep appending to the old active file rather than drop the record
				file, openErr := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if openErr != nil {
					return 0, fmtErrorf("failed to reopen log file '%s' after rotation failure: %w", s.path, openErr)
				}
				s.file = file
				// Resynchronize the tracked size; the tracked value is stale
				// when the file changed underneath the failed rotation
				if fi, errStat := file.Stat(); errStat == nil {
					s.size = fi.Size()
				}
			}
		}
	}

	n, err := s.file.Write(p)
	s.size += int64(n)
	if err != nil {
		return n, fmtErrorf("failed to write to log file '%s': %w", s.path, err)
	}
	return n, nil
}

// rotate shifts the backup ring and opens a fresh active file.
// Caller holds s.mu.
func (s *rotatingSink) rotate() error {
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			s.report("rotate", fmtErrorf("failed to close log file before rotation: %w", err))
		}
		s.file = nil
	}

	if s.maxFiles > 1 {
		// Drop the oldest backup, then shift path.i -> path.i+1
		oldest := s.backupPath(s.maxFiles - 1)
		if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
			s.report("rotate", fmtErrorf("failed to remove oldest backup '%s': %w", oldest, err))
		}
		for i := s.maxFiles - 2; i >= 1; i-- {
			src := s.backupPath(i)
			dst := s.backupPath(i + 1)
			if err := os.Rename(src, dst); err != nil && !os.IsNotExist(err) {
				s.report("rotate", fmtErrorf("failed to shift backup '%s' to '%s': %w", src, dst, err))
			}
		}
		if err := os.Rename(s.path, s.backupPath(1)); err != nil {
			return fmtErrorf("failed to rotate log file '%s': %w", s.path, err)
		}
	} else {
		// Single-file retention: the rolled content is simply discarded
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmtErrorf("failed to truncate log file '%s': %w", s.path, err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to create log file after rotation: %w", err)
	}

	s.file = file
	s.size = 0
	if s.rotations != nil {
		s.rotations.Add(1)
	}
	return nil
}

// backupPath returns the numbered backup name for index i >= 1.
func (s *rotatingSink) backupPath(i int64) string {
	return fmt.Sprintf("%s.%d", s.path, i)
}

// Sync flushes the active file's buffers to disk.
func (s *rotatingSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", s.path, err)
	}
	return nil
}

// Close syncs and releases the active file. Safe to call more than once.
func (s *rotatingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	var finalErr error
	if err := s.file.Sync(); err != nil {
		finalErr = fmtErrorf("failed to sync log file '%s' during close: %w", s.path, err)
	}
	if err := s.file.Close(); err != nil {
		closeErr := fmtErrorf("failed to close log file '%s': %w", s.path, err)
		finalErr = combineErrors(finalErr, closeErr)
	}
	s.file = nil
	return finalErr
}
