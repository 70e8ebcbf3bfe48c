package sink

import "io"

// Sink receives finished log lines from the drain loop. Write is called
// with one complete line, including the trailing newline, and may block.
// The line's bytes are only valid for the duration of the call.
type Sink interface {
	// Write emits one finished line.
	Write(line []byte) error

	// Close releases the sink's resources and flushes buffered output.
	Close() error
}

// Writer adapts any io.Writer to the Sink interface.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a sink. Close closes w when it implements
// io.Closer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write forwards the line to the wrapped writer.
func (s *Writer) Write(line []byte) error {
	_, err := s.w.Write(line)
	return err
}

// Close closes the wrapped writer if it is closable.
func (s *Writer) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
