package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extprune/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// ConfigurableNodeID is the unique identifier for the concrete logger Graft node.
const ConfigurableNodeID graft.ID = "adapter.logger.configurable"

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ConfigurableNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConfigurableNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}
