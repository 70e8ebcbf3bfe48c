// Package sink provides the output targets that receive finished log
// lines from the drain loop.
//
// A Sink accepts one complete line per Write call. Sinks may block in
// Write (a slow file, a full pipe); only the draining goroutine ever
// calls them, so the producing hot path is never exposed to sink
// latency. Write errors are surfaced to the flush caller and never
// corrupt the arena.
//
// Built-in sinks:
//
//   - Stdout writes lines to standard output.
//   - File appends lines to a file through a buffered writer and
//     flushes on Close.
//   - Null discards lines while counting bytes, for benchmarks and
//     tests.
//   - Multi fans a line out to several child sinks.
//   - Zerolog feeds lines into an existing zerolog pipeline, for
//     applications that route all output through one zerolog.Logger.
package sink
