package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Inventory = (*DirInventory)(nil)

// DirInventory lists installed extensions as the subdirectories of a directory.
type DirInventory struct{}

// NewInventory creates a new DirInventory.
func NewInventory() *DirInventory {
	return &DirInventory{}
}

// List returns the names of the subdirectories of dir, sorted by name.
// Symlinks are followed; plain files are skipped.
func (i *DirInventory) List(_ context.Context, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, i.fail("failed to scan extensions directory", dir, err)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInventoryNotDir, "failed to scan extensions directory"), "path", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, i.fail("failed to list extensions directory", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(dir, e) {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

func (i *DirInventory) fail(msg, dir string, err error) error {
	return inputError(
		domain.ErrInventoryNotFound,
		domain.ErrInventoryPermission,
		domain.ErrInventoryReadFailed,
		msg, dir, err,
	)
}

func isDir(dir string, e iofs.DirEntry) bool {
	if e.Type()&iofs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
