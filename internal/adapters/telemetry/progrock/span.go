package progrock

import (
	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards task output to the vertex stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError attaches an error to the span. The vertex is marked failed
// once End is called.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End marks the vertex as finished.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// Skipped marks the vertex as not executed. Completion is still emitted by
// End, so the vertex finishes exactly once.
func (s *Span) Skipped() {
	s.vertex.Cached()
}
