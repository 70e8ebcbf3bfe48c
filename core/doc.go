// Package core holds the process-wide machinery of deferlog: the Level
// type for severity filtering, the byte Arena that stashes encoded
// argument bytes between callsite and drain, the single-producer
// single-consumer record Queue, and the Record type that ties a
// timestamp, callsite metadata and captured argument fragments together.
//
// Everything here assumes a single producing goroutine and a single
// draining goroutine. The Arena's head is mutated only by the producer
// and its tail only by the drainer; the Queue's producer and consumer
// indices follow the same split. Publication of a record's arena bytes
// rides on the queue's release-store/acquire-load pair, so no further
// synchronization is needed on the arena itself.
//
// Records are stored by value in the queue slots. The Fragment array is
// kept inline so that enqueueing a record with up to four arguments
// never touches the heap; calls with more arguments spill into a slice.
package core
