// Package ports defines the core interfaces for the application.
package ports

import "context"

// Inventory lists the installed extensions.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type Inventory interface {
	// List returns the names of the immediate subdirectories of dir.
	// A missing directory, a path that is not a directory, or a permission
	// failure is returned as an error.
	List(ctx context.Context, dir string) ([]string, error)
}
