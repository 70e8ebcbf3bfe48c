package core

import (
	"fmt"
	"sync/atomic"
)

// SkipMarker is written into the first byte of a pad region when a
// reservation cannot fit contiguously before the physical end of the
// buffer. The drainer never reads padded bytes as data; the marker exists
// so that anything walking the raw buffer can tell a skipped region from
// an encoded one.
const SkipMarker byte = 0xF7

// Arena is a fixed-capacity circular byte buffer. The producer reserves
// contiguous windows at the head; the drainer releases consumed bytes by
// advancing the tail. Offsets are absolute (monotonically increasing) and
// mapped to physical positions modulo the capacity, which keeps the
// occupancy arithmetic free of wrap special cases.
//
// Only the producing goroutine may call Reserve and Rollback; only the
// draining goroutine may call ReleaseThrough.
type Arena struct {
	buf    []byte
	head   atomic.Uint64
	tail   atomic.Uint64
	strict bool
}

// NewArena creates an arena with the given capacity in bytes.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		panic("deferlog: arena capacity must be positive")
	}
	return &Arena{buf: make([]byte, capacity)}
}

// SetStrict makes capacity violations panic instead of returning
// ErrArenaOverflow, surfacing miscalibrated buffer sizes during
// development.
func (a *Arena) SetStrict(strict bool) { a.strict = strict }

// Cap returns the arena capacity in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Occupied returns the number of bytes between tail and head.
func (a *Arena) Occupied() int {
	return int(a.head.Load() - a.tail.Load())
}

// CurrentHead returns the absolute offset of the next reservation.
func (a *Arena) CurrentHead() uint64 { return a.head.Load() }

// Reserve hands out a contiguous window of n bytes, or fails with
// ErrArenaOverflow when the bytes are not available without overwriting
// un-drained data. When the physical end of the buffer does not hold n
// contiguous bytes, the remainder is padded (first pad byte set to
// SkipMarker, counted against occupancy) and the window is served from
// physical offset 0. Never blocks. Producer-only.
func (a *Arena) Reserve(n int) (Window, error) {
	cb := uint64(len(a.buf))
	if n <= 0 || uint64(n) > cb {
		return Window{}, a.overflow(n)
	}

	head := a.head.Load()
	tail := a.tail.Load()
	pos := head % cb

	var pad uint64
	if pos+uint64(n) > cb {
		pad = cb - pos
	}
	if (head-tail)+pad+uint64(n) > cb {
		return Window{}, a.overflow(n)
	}

	if pad > 0 {
		a.buf[pos] = SkipMarker
	}
	start := head + pad
	p := start % cb
	w := Window{
		arena: a,
		base:  head,
		start: start,
		buf:   a.buf[p : p+uint64(n)],
	}
	a.head.Store(start + uint64(n))
	return w, nil
}

// ReleaseThrough moves the tail to the given absolute offset. Called only
// by the drainer, after every record ending at or before offset has been
// consumed.
func (a *Arena) ReleaseThrough(offset uint64) {
	if offset < a.tail.Load() {
		return
	}
	a.tail.Store(offset)
}

// Rollback abandons the most recent reservation, restoring the head to
// where it was before the window (including any pad) was taken.
// Producer-only, and valid only while no later reservation exists.
func (a *Arena) Rollback(w Window) {
	if w.arena != a {
		return
	}
	a.head.Store(w.base)
}

func (a *Arena) overflow(n int) error {
	if a.strict {
		panic(fmt.Sprintf("deferlog: arena overflow: cannot reserve %d bytes (capacity %d, occupied %d)",
			n, len(a.buf), a.Occupied()))
	}
	return ErrArenaOverflow
}

// Window is an exclusively-borrowed contiguous region of the arena.
// Encoders consume its bytes front to back; the sub-slices they hand out
// stay valid until the owning record is drained.
type Window struct {
	arena *Arena
	base  uint64 // head before the reservation, for Rollback
	start uint64 // absolute offset of the first data byte
	buf   []byte
}

// Bytes returns the window's full byte region.
func (w Window) Bytes() []byte { return w.buf }

// Len returns the window size in bytes.
func (w Window) Len() int { return len(w.buf) }

// Start returns the absolute offset of the window's first byte.
func (w Window) Start() uint64 { return w.start }

// End returns the absolute offset one past the window's last byte. The
// drainer passes it to ReleaseThrough once the owning record is emitted.
func (w Window) End() uint64 { return w.start + uint64(len(w.buf)) }
