package sink

import (
	"io"
	"os"
)

// Stdout writes lines to standard output.
type Stdout struct {
	w io.Writer
}

// NewStdout creates a stdout sink.
func NewStdout() *Stdout {
	return &Stdout{w: os.Stdout}
}

// Write emits the line to stdout.
func (s *Stdout) Write(line []byte) error {
	_, err := s.w.Write(line)
	return err
}

// Close is a no-op; stdout stays open for the process lifetime.
func (s *Stdout) Close() error { return nil }
