package logger

import (
	"sync/atomic"

	"github.com/firthlabs/deferlog/core"
)

// Stats tracks producer-side drops and drained records.
type Stats struct {
	// Separate atomic counters per level
	droppedTrace atomic.Uint64
	droppedDebug atomic.Uint64
	droppedInfo  atomic.Uint64
	droppedWarn  atomic.Uint64
	droppedError atomic.Uint64
	// processedTotal counts records emitted by the drain loop
	processedTotal atomic.Uint64
}

func (s *Stats) droppedCounter(level core.Level) *atomic.Uint64 {
	switch level {
	case core.TraceLevel:
		return &s.droppedTrace
	case core.DebugLevel:
		return &s.droppedDebug
	case core.InfoLevel:
		return &s.droppedInfo
	case core.WarnLevel:
		return &s.droppedWarn
	default:
		return &s.droppedError
	}
}

// IncrementDropped counts a record dropped at the given level.
func (s *Stats) IncrementDropped(level core.Level) {
	s.droppedCounter(level).Add(1)
}

// IncrementProcessed counts a record emitted by the drain loop.
func (s *Stats) IncrementProcessed() {
	s.processedTotal.Add(1)
}

// Dropped returns the dropped count for a level.
func (s *Stats) Dropped(level core.Level) uint64 {
	return s.droppedCounter(level).Load()
}

// Processed returns the number of drained records.
func (s *Stats) Processed() uint64 {
	return s.processedTotal.Load()
}

// TotalDropped returns the dropped count across all levels.
func (s *Stats) TotalDropped() uint64 {
	return s.droppedTrace.Load() +
		s.droppedDebug.Load() +
		s.droppedInfo.Load() +
		s.droppedWarn.Load() +
		s.droppedError.Load()
}

// Reset resets all counters to zero.
func (s *Stats) Reset() {
	s.droppedTrace.Store(0)
	s.droppedDebug.Store(0)
	s.droppedInfo.Store(0)
	s.droppedWarn.Store(0)
	s.droppedError.Store(0)
	s.processedTotal.Store(0)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of current statistics.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Dropped: map[core.Level]uint64{
			core.TraceLevel: s.droppedTrace.Load(),
			core.DebugLevel: s.droppedDebug.Load(),
			core.InfoLevel:  s.droppedInfo.Load(),
			core.WarnLevel:  s.droppedWarn.Load(),
			core.ErrorLevel: s.droppedError.Load(),
		},
		Processed: s.processedTotal.Load(),
	}
}
