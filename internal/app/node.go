package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extprune/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/extprune/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/extprune/internal/adapters/history"            //nolint:depguard // Wired in app layer
	"go.trai.ch/extprune/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/extprune/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/extprune/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.KeepListNodeID,
			fs.InventoryNodeID,
			fs.HasherNodeID,
			history.NodeID,
			reconciler.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.ConfigurableNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	keepLoader, err := graft.Dep[ports.KeepListLoader](ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := graft.Dep[ports.Inventory](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	openHistory, err := graft.Dep[ports.HistoryOpener](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[*reconciler.Reconciler](ctx)
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

	return New(loader, keepLoader, inventory, rec, hasher, openHistory, log, telemetry), nil
}
