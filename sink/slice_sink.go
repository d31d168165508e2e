package sink

// SliceSink buffers every delivered line in memory. Intended for tests
// and in-process callers that want the full n-best list as a value
// rather than a stream.
type SliceSink struct {
	Lines    []string
	Finished bool
}

// NewSliceSink returns an empty SliceSink.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

// Deliver appends line. Never returns an error.
func (s *SliceSink) Deliver(line string) error {
	s.Lines = append(s.Lines, line)

	return nil
}

// Finish marks the sink as finished.
func (s *SliceSink) Finish() {
	s.Finished = true
}
