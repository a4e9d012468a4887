package ports

import "go.trai.ch/extprune/internal/core/domain"

// ConfigLoader defines the interface for loading the settings file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. A missing file is reported with an
	// error matching fs.ErrNotExist.
	Load(path string) (*domain.Settings, error)
}
