// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/extprune/internal/core/ports"
)

var (
	_ ports.Telemetry = (*Recorder)(nil)
	_ io.WriterTo     = (*Recorder)(nil)
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	journal *Journal
}

// New creates a new Recorder writing to a Journal.
func New() *Recorder {
	journal := NewJournal()
	r := NewRecorder(journal)
	r.journal = journal
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex. Vertices with the same name share a digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// WriteTo renders the recorded vertices. It writes nothing when the
// recorder was not created with a Journal.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	if r.journal == nil {
		return 0, nil
	}
	return r.journal.WriteTo(w)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
