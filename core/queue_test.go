package core

import (
	"errors"
	"testing"
	"time"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue(8)

	for i := 0; i < 5; i++ {
		r := Record{Level: InfoLevel}
		r.SetArenaEnd(uint64(i))
		if err := q.Enqueue(&r); err != nil {
			t.Fatalf("Enqueue(%d) failed: %v", i, err)
		}
	}

	var rec Record
	for i := 0; i < 5; i++ {
		if !q.Dequeue(&rec) {
			t.Fatalf("Dequeue(%d) returned empty", i)
		}
		if rec.ArenaEnd() != uint64(i) {
			t.Errorf("dequeue order: got record %d at position %d", rec.ArenaEnd(), i)
		}
	}
	if q.Dequeue(&rec) {
		t.Error("Dequeue on empty queue returned a record")
	}
}

func TestQueue_FullAndRecovery(t *testing.T) {
	q := NewQueue(4)

	for i := 0; i < 4; i++ {
		if err := q.Enqueue(&Record{}); err != nil {
			t.Fatalf("Enqueue(%d) failed: %v", i, err)
		}
	}
	if err := q.Enqueue(&Record{}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Enqueue on full queue = %v, want ErrQueueFull", err)
	}

	var rec Record
	if !q.Dequeue(&rec) {
		t.Fatal("Dequeue failed on full queue")
	}
	if err := q.Enqueue(&Record{}); err != nil {
		t.Errorf("Enqueue after dequeue failed: %v", err)
	}
}

func TestQueue_Len(t *testing.T) {
	q := NewQueue(8)
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	q.Enqueue(&Record{})
	q.Enqueue(&Record{})
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
	var rec Record
	q.Dequeue(&rec)
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
	if q.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", q.Cap())
	}
}

// TestQueue_SingleProducerSingleConsumer runs the two sides on separate
// goroutines and checks that the consumer observes every record in
// enqueue order.
func TestQueue_SingleProducerSingleConsumer(t *testing.T) {
	const n = 10000
	q := NewQueue(64)
	done := make(chan error, 1)

	go func() {
		var rec Record
		next := uint64(0)
		deadline := time.Now().Add(10 * time.Second)
		for next < n {
			if !q.Dequeue(&rec) {
				if time.Now().After(deadline) {
					done <- errors.New("consumer timed out")
					return
				}
				continue
			}
			if rec.ArenaEnd() != next {
				done <- errors.New("out-of-order dequeue")
				return
			}
			next++
		}
		done <- nil
	}()

	for i := uint64(0); i < n; {
		r := Record{}
		r.SetArenaEnd(i)
		if err := q.Enqueue(&r); err == nil {
			i++
		}
	}

	if err := <-done; err != nil {
		t.Fatal(err)
	}
}
