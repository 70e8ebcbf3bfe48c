// Package logger is the public API of deferlog. Most users only need to
// import this package.
//
// A log call captures the minimum data needed to reconstruct the line —
// a timestamp, the callsite, and each argument encoded by its strategy —
// into the process-wide arena and record queue, then returns. Formatting
// and I/O happen later, when Flush drains the queue into the configured
// sink. Install the process-wide state once with Init:
//
//	if err := logger.Init(); err != nil { ... }
//	logger.Info("engine ready, session {}", logger.Str(session))
//	...
//	logger.Flush()
//
// Per-argument strategies, cheapest first:
//
//   - serialize: Ser, SerFixed, SerStruct — encode the value's bytes via
//     the serialize contract; formatting is fully deferred.
//   - clone-defer (the default for small copyable values): Uint64, Int,
//     Float64, Bool, Str, ... — byte-copy the value into the arena and
//     decode at drain.
//   - eager-display: Display — fmt.Sprint at the callsite, only the copy
//     is deferred.
//   - eager-debug: Debug — fmt.Sprintf("%+v") at the callsite.
//
// Named(name, arg) binds an argument to an explicit name; named
// arguments append after the message as " name=value" pairs, while
// positional arguments fill the template's "{}" placeholders in order.
//
// A call below the configured minimum level returns before touching the
// arena or the queue. A call that cannot reserve arena space or a queue
// slot drops its record, rolls the reservation back, counts the drop,
// and reports core.ErrArenaOverflow or core.ErrQueueFull; nothing is
// ever partially encoded.
//
// The producer side is wait-free and allocation-free for fixed-size and
// arena-backed arguments. Exactly one goroutine may log and exactly one
// may call Flush; the two may be the same goroutine.
package logger
