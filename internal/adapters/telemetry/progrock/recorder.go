// Package progrock records cook spans as progrock vertices, one per package,
// child cooker or session.
package progrock

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/cook/internal/core/ports"
)

// Recorder implements ports.Tracer on top of a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex. Vertex digests are unique per call, so a
// package cooked twice shows up twice.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	v := &Vertex{vertex: r.rec.Vertex(d, name)}
	if cfg.Cached {
		v.vertex.Cached()
	}
	return ctx, v
}

// EmitPlan records the plan as a completed vertex listing the planned packages.
func (r *Recorder) EmitPlan(_ context.Context, packages []string) {
	d := digest.FromString(fmt.Sprintf("plan#%d", r.seq.Add(1)))
	v := r.rec.Vertex(d, fmt.Sprintf("plan: %d packages", len(packages)))
	for _, p := range packages {
		_, _ = fmt.Fprintln(v.Stdout(), p)
	}
	v.Done(nil)
}

// Close closes the underlying writer when it supports closing.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder

	mu    sync.Mutex
	err   error
	ended bool
}

// Write sends output to the vertex stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// RecordError remembers err; the vertex completes with the first one.
func (v *Vertex) RecordError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err == nil {
		v.err = err
	}
}

// SetAttribute writes the attribute to the vertex stderr stream.
func (v *Vertex) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "%s=%v\n", key, value)
}

// End completes the vertex. Further calls do nothing.
func (v *Vertex) End() {
	v.mu.Lock()
	if v.ended {
		v.mu.Unlock()
		return
	}
	v.ended = true
	err := v.err
	v.mu.Unlock()

	v.vertex.Done(err)
}
