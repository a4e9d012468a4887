package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extprune/internal/core/ports"
)

// NodeID is the unique identifier for the history opener Graft node.
const NodeID graft.ID = "adapter.history_store"

func init() {
	graft.Register(graft.Node[ports.HistoryOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HistoryOpener, error) {
			return Open, nil
		},
	})
}
