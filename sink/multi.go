package sink

// Multi fans each line out to multiple child sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a sink that writes every line to each child.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write forwards the line to every child. All children are attempted;
// the last error wins.
func (m *Multi) Write(line []byte) error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Write(line); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes every child. All children are attempted; the last error
// wins.
func (m *Multi) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
