// Package progrock provides a ports.Tracer that records spans as progrock vertices.
package progrock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/tally/internal/core/ports"
)

// Recorder implements ports.Tracer using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	count int
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

var _ ports.Tracer = (*Recorder)(nil)

// Start records a new vertex for the span. Vertex digests are unique per
// recorder so repeated span names do not collapse into one vertex.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := r.rec.Vertex(r.nextDigest(name), name)
	s := &Span{vertex: v}
	for k, val := range cfg.Attributes {
		s.SetAttribute(k, val)
	}
	return ctx, s
}

// EmitPlan records a completed vertex listing the planned packages.
func (r *Recorder) EmitPlan(_ context.Context, packageIDs []string) {
	v := r.rec.Vertex(r.nextDigest("plan"), "plan")
	_, _ = fmt.Fprintf(v.Stdout(), "packages: %s\n", strings.Join(packageIDs, ", "))
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) nextDigest(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	return digest.FromString(fmt.Sprintf("%d/%s", r.count, name))
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write sends p to the vertex stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// SetAttribute writes the attribute as a key=value line.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError keeps err to complete the vertex with on End.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	_, _ = fmt.Fprintf(s.vertex.Stderr(), "%v\n", err)
}

// End marks the vertex finished.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vertex.Done(s.err)
}
