package core

import "sync/atomic"

// Queue is a bounded single-producer single-consumer ring of log
// records. The producer index is advanced with an atomic store after the
// slot is written, which publishes both the record and the arena bytes
// its fragments point to; the consumer observes it with an atomic load
// before reading the slot.
type Queue struct {
	slots []Record
	prod  atomic.Uint64
	cons  atomic.Uint64
}

// NewQueue creates a queue with the given number of slots.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		panic("deferlog: queue capacity must be positive")
	}
	return &Queue{slots: make([]Record, capacity)}
}

// Cap returns the number of slots.
func (q *Queue) Cap() int { return len(q.slots) }

// Len returns the number of enqueued, not yet dequeued records.
func (q *Queue) Len() int {
	return int(q.prod.Load() - q.cons.Load())
}

// Enqueue copies the record into the next free slot. Fails with
// ErrQueueFull without blocking when every slot is occupied.
// Producer-only.
func (q *Queue) Enqueue(r *Record) error {
	p := q.prod.Load()
	c := q.cons.Load()
	if p-c == uint64(len(q.slots)) {
		return ErrQueueFull
	}
	q.slots[p%uint64(len(q.slots))] = *r
	q.prod.Store(p + 1)
	return nil
}

// Dequeue copies the oldest record into dst and frees its slot. Returns
// false without blocking when the queue is empty. Consumer-only.
func (q *Queue) Dequeue(dst *Record) bool {
	c := q.cons.Load()
	p := q.prod.Load()
	if c == p {
		return false
	}
	i := c % uint64(len(q.slots))
	*dst = q.slots[i]
	q.slots[i] = Record{}
	q.cons.Store(c + 1)
	return true
}
