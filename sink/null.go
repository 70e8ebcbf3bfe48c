package sink

import "sync/atomic"

// Null discards every line while counting lines and bytes. Used by
// benchmarks and tests that exercise the drain path without I/O.
type Null struct {
	lines atomic.Uint64
	bytes atomic.Uint64
}

// NewNull creates a null sink.
func NewNull() *Null { return &Null{} }

// Write discards the line, counting it.
func (s *Null) Write(line []byte) error {
	s.lines.Add(1)
	s.bytes.Add(uint64(len(line)))
	return nil
}

// Close is a no-op.
func (s *Null) Close() error { return nil }

// Lines returns the number of lines discarded.
func (s *Null) Lines() uint64 { return s.lines.Load() }

// Bytes returns the number of bytes discarded.
func (s *Null) Bytes() uint64 { return s.bytes.Load() }
