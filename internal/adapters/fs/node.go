package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extprune/internal/core/ports"
)

const (
	// InventoryNodeID is the unique identifier for the inventory Graft node.
	InventoryNodeID graft.ID = "adapter.fs.inventory"
	// RemoverNodeID is the unique identifier for the remover Graft node.
	RemoverNodeID graft.ID = "adapter.fs.remover"
	// KeepListNodeID is the unique identifier for the keep list loader Graft node.
	KeepListNodeID graft.ID = "adapter.fs.keep_list"
	// HasherNodeID is the unique identifier for the fingerprint hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Inventory]{
		ID:        InventoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Inventory, error) {
			return NewInventory(), nil
		},
	})

	graft.Register(graft.Node[ports.Remover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Remover, error) {
			return NewRemover(), nil
		},
	})

	graft.Register(graft.Node[ports.KeepListLoader]{
		ID:        KeepListNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeepListLoader, error) {
			return NewKeepFileLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewHasher(), nil
		},
	})
}
