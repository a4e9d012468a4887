package fs

import (
	"os"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports"
)

var _ ports.KeepListLoader = (*KeepFileLoader)(nil)

// KeepFileLoader reads the keep list from a plain text file.
type KeepFileLoader struct{}

// NewKeepFileLoader creates a new KeepFileLoader.
func NewKeepFileLoader() *KeepFileLoader {
	return &KeepFileLoader{}
}

// Load reads the keep list at path.
func (l *KeepFileLoader) Load(path string) (domain.KeepSet, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, l.fail(path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	keep, err := domain.ParseKeepList(f)
	if err != nil {
		return nil, l.fail(path, err)
	}

	return keep, nil
}

func (l *KeepFileLoader) fail(path string, err error) error {
	return inputError(
		domain.ErrKeepListNotFound,
		domain.ErrKeepListPermission,
		domain.ErrKeepListReadFailed,
		"failed to load keep list", path, err,
	)
}
