package ports

import "go.trai.ch/extprune/internal/core/domain"

// KeepListLoader loads the keep policy.
//
//go:generate mockgen -source=keep_list.go -destination=mocks/mock_keep_list.go -package=mocks
type KeepListLoader interface {
	// Load reads the keep list at path.
	Load(path string) (domain.KeepSet, error)
}
