package core

import (
	"errors"
	"testing"
)

func TestArena_ReserveExactSize(t *testing.T) {
	a := NewArena(128)

	w, err := a.Reserve(40)
	if err != nil {
		t.Fatalf("Reserve(40) failed: %v", err)
	}
	if w.Len() != 40 {
		t.Errorf("window length = %d, want 40", w.Len())
	}
	if a.Occupied() != 40 {
		t.Errorf("Occupied() = %d, want 40", a.Occupied())
	}
}

func TestArena_ReserveFullCapacity(t *testing.T) {
	a := NewArena(64)

	// Reserving the whole capacity on an empty arena succeeds.
	w, err := a.Reserve(64)
	if err != nil {
		t.Fatalf("Reserve(C_B) on empty arena failed: %v", err)
	}
	if w.Len() != 64 {
		t.Errorf("window length = %d, want 64", w.Len())
	}

	a.ReleaseThrough(w.End())
	if a.Occupied() != 0 {
		t.Errorf("Occupied() after full release = %d, want 0", a.Occupied())
	}

	// One byte past capacity fails.
	if _, err := a.Reserve(65); !errors.Is(err, ErrArenaOverflow) {
		t.Errorf("Reserve(C_B+1) = %v, want ErrArenaOverflow", err)
	}
}

func TestArena_ReserveOverflow(t *testing.T) {
	a := NewArena(64)

	if _, err := a.Reserve(60); err != nil {
		t.Fatalf("Reserve(60) failed: %v", err)
	}
	if _, err := a.Reserve(8); !errors.Is(err, ErrArenaOverflow) {
		t.Errorf("Reserve past occupancy = %v, want ErrArenaOverflow", err)
	}
	// The failed reservation must not move the head.
	if a.Occupied() != 60 {
		t.Errorf("Occupied() after failed reserve = %d, want 60", a.Occupied())
	}
}

func TestArena_ReserveInvalidSize(t *testing.T) {
	a := NewArena(64)

	if _, err := a.Reserve(0); !errors.Is(err, ErrArenaOverflow) {
		t.Errorf("Reserve(0) = %v, want ErrArenaOverflow", err)
	}
	if _, err := a.Reserve(-1); !errors.Is(err, ErrArenaOverflow) {
		t.Errorf("Reserve(-1) = %v, want ErrArenaOverflow", err)
	}
}

func TestArena_WrapWithSkipMarker(t *testing.T) {
	a := NewArena(16)

	w1, err := a.Reserve(10)
	if err != nil {
		t.Fatalf("Reserve(10) failed: %v", err)
	}
	a.ReleaseThrough(w1.End())

	// 6 physical bytes remain before the end; a 8-byte reservation must
	// pad to the end and serve from physical offset 0.
	w2, err := a.Reserve(8)
	if err != nil {
		t.Fatalf("Reserve(8) across the physical end failed: %v", err)
	}
	if a.buf[10] != SkipMarker {
		t.Errorf("pad byte = %#x, want SkipMarker %#x", a.buf[10], SkipMarker)
	}
	if got := w2.Start() % uint64(a.Cap()); got != 0 {
		t.Errorf("window physical start = %d, want 0", got)
	}
	if w2.Len() != 8 {
		t.Errorf("window length = %d, want 8", w2.Len())
	}
	// The pad counts against occupancy until released.
	if a.Occupied() != 6+8 {
		t.Errorf("Occupied() = %d, want 14", a.Occupied())
	}

	a.ReleaseThrough(w2.End())
	if a.Occupied() != 0 {
		t.Errorf("Occupied() after release = %d, want 0", a.Occupied())
	}
}

func TestArena_WrapRefusedWhenPadDoesNotFit(t *testing.T) {
	a := NewArena(16)

	w1, err := a.Reserve(10)
	if err != nil {
		t.Fatalf("Reserve(10) failed: %v", err)
	}
	// Nothing drained: the pad plus the new window would overrun the
	// un-drained bytes.
	if _, err := a.Reserve(8); !errors.Is(err, ErrArenaOverflow) {
		t.Errorf("wrapping over live bytes = %v, want ErrArenaOverflow", err)
	}
	_ = w1
}

func TestArena_Rollback(t *testing.T) {
	a := NewArena(64)

	w1, err := a.Reserve(16)
	if err != nil {
		t.Fatalf("Reserve(16) failed: %v", err)
	}
	head := a.CurrentHead()

	w2, err := a.Reserve(16)
	if err != nil {
		t.Fatalf("second Reserve(16) failed: %v", err)
	}
	a.Rollback(w2)

	if a.CurrentHead() != head {
		t.Errorf("head after rollback = %d, want %d", a.CurrentHead(), head)
	}
	if a.Occupied() != 16 {
		t.Errorf("Occupied() after rollback = %d, want 16", a.Occupied())
	}
	_ = w1
}

func TestArena_RollbackIncludesPad(t *testing.T) {
	a := NewArena(16)

	w1, err := a.Reserve(10)
	if err != nil {
		t.Fatalf("Reserve(10) failed: %v", err)
	}
	a.ReleaseThrough(w1.End())

	head := a.CurrentHead()
	w2, err := a.Reserve(8) // pads 6 bytes to the physical end
	if err != nil {
		t.Fatalf("Reserve(8) failed: %v", err)
	}
	a.Rollback(w2)
	if a.CurrentHead() != head {
		t.Errorf("head after rollback = %d, want %d (pad must be rolled back too)", a.CurrentHead(), head)
	}
}

func TestArena_SequentialWindowsAreDisjoint(t *testing.T) {
	a := NewArena(64)

	w1, _ := a.Reserve(8)
	w2, _ := a.Reserve(8)

	w1.Bytes()[0] = 0xAA
	w2.Bytes()[0] = 0xBB
	if w1.Bytes()[0] != 0xAA {
		t.Error("windows alias the same bytes")
	}
	if w1.End() != w2.Start() {
		t.Errorf("windows are not adjacent: end %d, next start %d", w1.End(), w2.Start())
	}
}

func TestArena_StrictModePanics(t *testing.T) {
	a := NewArena(8)
	a.SetStrict(true)

	defer func() {
		if recover() == nil {
			t.Error("strict arena did not panic on overflow")
		}
	}()
	a.Reserve(9)
}
