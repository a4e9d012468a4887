// Package telemetry provides telemetry implementations that record nothing.
package telemetry

import (
	"context"

	"go.trai.ch/extprune/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (NoOpVertex) Log(_ string) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}
