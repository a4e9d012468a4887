package ports

import "context"

// Remover deletes installed extensions.
//
//go:generate mockgen -source=remover.go -destination=mocks/mock_remover.go -package=mocks
type Remover interface {
	// Remove recursively deletes the subdirectory name of dir.
	// Permission failures must satisfy errors.Is(err, fs.ErrPermission).
	Remove(ctx context.Context, dir, name string) error
}
