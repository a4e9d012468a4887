package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of removal work. Implementations that also
// satisfy io.WriterTo can print what they recorded.
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single recorded unit of work.
type Vertex interface {
	// Log records a message against the vertex.
	Log(msg string)
	// Cached marks the vertex as skipped without side effects.
	Cached()
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
