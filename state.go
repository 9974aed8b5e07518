package mlog

import (
	"sync/atomic"
	"time"
)

// managerState is the snapshot side of the manager: everything here is read
// without the mutation lock.
type managerState struct {
	Initialized atomic.Bool
	Level       atomic.Int64

	// Diagnostics counters for the lifetime of the manager
	TotalRecords   atomic.Uint64
	TotalRotations atomic.Uint64
	StartTime      atomic.Value // stores time.Time
}

// Stats is a point-in-time snapshot of manager activity.
type Stats struct {
	Records   uint64        // Records handed to the sink
	Rotations uint64        // Completed file rolls
	Uptime    time.Duration // Time since the manager was created
}

// Stats returns activity counters. Valid at any lifecycle state.
func (m *Manager) Stats() Stats {
	s := Stats{
		Records:   m.state.TotalRecords.Load(),
		Rotations: m.state.TotalRotations.Load(),
	}
	if start, ok := m.state.StartTime.Load().(time.Time); ok && !start.IsZero() {
		s.Uptime = time.Since(start)
	}
	return s
}
