package logger

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/firthlabs/deferlog/core"
	"github.com/firthlabs/deferlog/formatter"
	"github.com/firthlabs/deferlog/sink"
)

// callerSkip is the runtime.Caller depth from core.GetCallsite to the
// user's callsite: GetCallsite -> log -> Info/Warn/... -> caller.
const callerSkip = 3

// state is the process-wide logger: the arena, the queue, the clock,
// the sink, and the drain machinery. Installed once by Init.
type state struct {
	arena *core.Arena
	queue *core.Queue
	clock core.Clock
	level atomic.Int32
	stats Stats

	// Drain side. flushMu serializes Flush with sink replacement; the
	// producer never takes it.
	flushMu  sync.Mutex
	sink     sink.Sink
	text     *formatter.Text
	drainBuf bytes.Buffer
}

var global atomic.Pointer[state]

// Init installs the process-wide arena, queue, clock and sink. It must
// be called before the first log call; logging without it panics.
// Capacities and the minimum level default from the environment
// (DEFERLOG_ARENA_CAPACITY, DEFERLOG_QUEUE_CAPACITY, DEFERLOG_LEVEL);
// explicit options win.
//
// Calling Init again replaces the whole state; the previous sink is not
// closed, since its lifetime belongs to whoever supplied it. Flush
// before re-initializing or pending records are lost.
func Init(opts ...Option) error {
	cfg := configFromEnv()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sink == nil && cfg.filePath != "" {
		fs, err := sink.NewFile(cfg.filePath)
		if err != nil {
			return err
		}
		cfg.sink = fs
	}
	if cfg.sink == nil {
		cfg.sink = sink.NewStdout()
	}

	arena := core.NewArena(cfg.arenaCapacity)
	arena.SetStrict(cfg.strict)

	s := &state{
		arena: arena,
		queue: core.NewQueue(cfg.queueCapacity),
		clock: cfg.clock,
		sink:  cfg.sink,
		text:  formatter.NewText(formatter.Config{}),
	}
	s.level.Store(int32(cfg.level))
	s.drainBuf.Grow(256)
	global.Store(s)
	return nil
}

func get() *state {
	s := global.Load()
	if s == nil {
		panic("deferlog: Init must be called before logging")
	}
	return s
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level core.Level) {
	get().level.Store(int32(level))
}

// GetLevel returns the current minimum level.
func GetLevel() core.Level {
	return core.Level(get().level.Load())
}

// SetSink replaces the sink that Flush drains into. The previous sink
// is not closed.
func SetSink(next sink.Sink) {
	s := get()
	s.flushMu.Lock()
	s.sink = next
	s.flushMu.Unlock()
}

// SetFileSink opens path with append semantics and makes Flush drain
// into it.
func SetFileSink(path string) error {
	fs, err := sink.NewFile(path)
	if err != nil {
		return err
	}
	SetSink(fs)
	return nil
}

// GetStats returns a snapshot of the drop and processed counters.
func GetStats() Snapshot {
	return get().stats.GetSnapshot()
}

// ArenaUsage returns the arena's occupied bytes and capacity.
func ArenaUsage() (occupied, capacity int) {
	s := get()
	return s.arena.Occupied(), s.arena.Cap()
}

// QueueUsage returns the queue's pending records and capacity.
func QueueUsage() (length, capacity int) {
	s := get()
	return s.queue.Len(), s.queue.Cap()
}

// Trace logs at TraceLevel.
func Trace(template string, args ...Arg) error {
	return log(core.TraceLevel, template, args)
}

// DebugMsg logs at DebugLevel. (Debug is the eager-debug Arg
// constructor.)
func DebugMsg(template string, args ...Arg) error {
	return log(core.DebugLevel, template, args)
}

// Info logs at InfoLevel.
func Info(template string, args ...Arg) error {
	return log(core.InfoLevel, template, args)
}

// Warn logs at WarnLevel.
func Warn(template string, args ...Arg) error {
	return log(core.WarnLevel, template, args)
}

// Error logs at ErrorLevel.
func Error(template string, args ...Arg) error {
	return log(core.ErrorLevel, template, args)
}

// log is the producer hot path: level check, one arena reservation
// sized for every argument, sequential encodes, enqueue. A failure on
// either resource drops the whole record and rolls the reservation
// back; nothing is ever partially published.
func log(level core.Level, template string, args []Arg) error {
	s := get()
	if int32(level) < s.level.Load() {
		return nil
	}

	total := 0
	for i := range args {
		total += args[i].sizeRequired()
	}

	var rec core.Record
	rec.Time = s.clock.Now()
	rec.Level = level
	rec.Site = core.GetCallsite(callerSkip, template)

	if total > 0 {
		w, err := s.arena.Reserve(total)
		if err != nil {
			s.stats.IncrementDropped(level)
			return err
		}
		buf := w.Bytes()
		for i := range args {
			st, rest := args[i].encode(buf)
			buf = rest
			rec.AddFragment(core.Fragment{Name: args[i].name, Store: st})
		}
		rec.SetArenaEnd(w.End())
		if err := s.queue.Enqueue(&rec); err != nil {
			s.arena.Rollback(w)
			s.stats.IncrementDropped(level)
			return err
		}
		return nil
	}

	rec.SetArenaEnd(s.arena.CurrentHead())
	if err := s.queue.Enqueue(&rec); err != nil {
		s.stats.IncrementDropped(level)
		return err
	}
	return nil
}

// Flush synchronously drains the queue to empty, emitting one line per
// record to the sink in enqueue order and releasing each record's arena
// bytes after emission. Sink errors do not stop the drain; the first
// one is returned once the queue is empty. Flushing an empty queue is a
// no-op.
func Flush() error {
	s := get()
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	var rec core.Record
	var firstErr error
	for s.queue.Dequeue(&rec) {
		s.drainBuf.Reset()
		s.text.FormatRecord(&rec, &s.drainBuf)
		err := s.sink.Write(s.drainBuf.Bytes())
		s.arena.ReleaseThrough(rec.ArenaEnd())
		s.stats.IncrementProcessed()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close flushes pending records and closes the sink.
func Close() error {
	err := Flush()
	s := get()
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	if cerr := s.sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
