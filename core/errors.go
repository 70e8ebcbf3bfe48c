package core

import "errors"

var (
	// ErrArenaOverflow is returned by Arena.Reserve when the requested
	// window would overwrite un-drained bytes. The callsite that hits it
	// must drop its record without enqueueing.
	ErrArenaOverflow = errors.New("deferlog: arena overflow")

	// ErrQueueFull is returned by Queue.Enqueue when all slots are
	// occupied. The arena window reserved for the record must be rolled
	// back on the same path.
	ErrQueueFull = errors.New("deferlog: record queue full")
)
