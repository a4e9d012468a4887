package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extprune/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extprune/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extprune/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extprune/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.InventoryNodeID,
			fs.RemoverNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			inventory, err := graft.Dep[ports.Inventory](ctx)
			if err != nil {
				return nil, err
			}

			remover, err := graft.Dep[ports.Remover](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(inventory, remover, log, telemetry), nil
		},
	})
}
