package sink

import (
	"bytes"

	"github.com/rs/zerolog"
)

// Zerolog feeds drained lines into an existing zerolog pipeline, for
// applications that route all of their output through one
// zerolog.Logger. The finished line — already carrying deferlog's
// timestamp, level and callsite prefix — becomes the event message.
type Zerolog struct {
	log zerolog.Logger
}

// NewZerolog wraps a zerolog.Logger as a sink.
func NewZerolog(log zerolog.Logger) *Zerolog {
	return &Zerolog{log: log}
}

// Write emits the line as a level-less zerolog event.
func (s *Zerolog) Write(line []byte) error {
	s.log.Log().Msg(string(bytes.TrimRight(line, "\n")))
	return nil
}

// Close is a no-op; the wrapped logger's output is owned by the caller.
func (s *Zerolog) Close() error { return nil }
